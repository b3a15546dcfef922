// Package main is the battlegen command line tool.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/battle-engine/internal/storage"
	"github.com/jwebster45206/battle-engine/pkg/battle"
	"github.com/jwebster45206/battle-engine/pkg/generator"
)

var (
	seed       int64
	preset     string
	configPath string
	dataDir    string
	weightMode string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "battlegen",
	Short: "Hypothetical battle content generator",
	Long: `battlegen builds deterministic hypothetical battles between historical factions:
prompts, outcomes, casualty estimates, lore, polls and export bundles.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&seed, "seed", 12345, "base seed")
	pf.StringVar(&preset, "preset", generator.PresetBalanced, "named preset: "+strings.Join(generator.PresetNames(), ", "))
	pf.StringVar(&configPath, "config", "", "JSON or YAML run configuration; overrides --preset")
	pf.StringVar(&dataDir, "data-dir", "./data", "directory holding user_factions, user_style_packs and user_presets files")
	pf.StringVar(&weightMode, "weights", "", "weight mode: fixed, randomized or auto; overrides the preset and config")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log warnings and progress to stderr")

	rootCmd.AddCommand(battleCmd, scheduleCmd, tournamentCmd, exportCmd, factionsCmd, queueCmd)
}

func newLogger() *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setup loads overrides and the run configuration.
func setup() (*generator.Generator, generator.Config, storage.Overrides, error) {
	log := newLogger()
	overrides, err := storage.LoadOverrides(dataDir, log)
	if err != nil {
		return nil, generator.Config{}, storage.Overrides{}, err
	}
	cfg, err := runConfig(log)
	if err != nil {
		return nil, generator.Config{}, storage.Overrides{}, err
	}
	return generator.New(overrides.Registry(), overrides.Styles(), log), cfg, overrides, nil
}

func runConfig(log *slog.Logger) (generator.Config, error) {
	cfg, ok := generator.Preset(preset)
	if !ok {
		log.Warn("Unknown preset, using default", "preset", preset, "default", generator.PresetBalanced)
	}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return generator.Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return generator.Config{}, fmt.Errorf("failed to parse config %s: %w", configPath, err)
		}
	}
	if weightMode != "" {
		mode, ok := battle.ParseWeightMode(weightMode)
		if !ok {
			return generator.Config{}, fmt.Errorf("unknown weight mode %q", weightMode)
		}
		cfg.WeightMode = mode
	}
	return cfg, nil
}
