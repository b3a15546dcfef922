package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/jwebster45206/battle-engine/pkg/export"
	"github.com/jwebster45206/battle-engine/pkg/generator"
)

var (
	battleIndex  int
	asJSON       bool
	days         int
	templatePath string
	matchups     []string
	outPath      string
	aspects      string
	windowHint   string
	copyQueue    bool
)

var battleCmd = &cobra.Command{
	Use:   "battle <faction A> <faction B>",
	Short: "Build a single battle",
	Args:  cobra.ExactArgs(2),
	RunE:  runBattle,
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Build a day-indexed schedule from a matchup template",
	RunE:  runSchedule,
}

var tournamentCmd = &cobra.Command{
	Use:   "tournament <faction>...",
	Short: "Run a round robin and print the Elo leaderboard",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runTournament,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Build a schedule and write the ZIP bundle",
	RunE:  runExport,
}

var factionsCmd = &cobra.Command{
	Use:   "factions [query]",
	Short: "List or search factions",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFactions,
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Print the Midjourney /imagine queue for a schedule",
	RunE:  runQueue,
}

func init() {
	battleCmd.Flags().IntVar(&battleIndex, "index", 0, "day index")
	battleCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a card")

	for _, c := range []*cobra.Command{scheduleCmd, exportCmd, queueCmd} {
		c.Flags().IntVar(&days, "days", 7, "number of days")
		c.Flags().StringVar(&templatePath, "template", "", "file with one \"A vs. B\" row per line")
		c.Flags().StringArrayVarP(&matchups, "matchup", "m", nil, "template row, repeatable")
	}
	scheduleCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of cards")

	exportCmd.Flags().StringVarP(&outPath, "out", "o", "battles_bundle.zip", "bundle path")
	for _, c := range []*cobra.Command{exportCmd, queueCmd} {
		c.Flags().StringVar(&aspects, "aspects", string(export.AspectsBoth), "169, 916 or both")
	}
	exportCmd.Flags().StringVar(&windowHint, "window", "Discord", "window title the autopaste script activates")
	queueCmd.Flags().BoolVar(&copyQueue, "copy", false, "copy the queue to the clipboard")
}

func runBattle(_ *cobra.Command, args []string) error {
	gen, cfg, _, err := setup()
	if err != nil {
		return err
	}
	a, err := gen.Registry().Lookup(args[0])
	if err != nil {
		return err
	}
	b, err := gen.Registry().Lookup(args[1])
	if err != nil {
		return err
	}
	rec, err := gen.BuildBattleRecord(a, b, seed, battleIndex, cfg)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(rec)
	}
	fmt.Println(renderRecord(rec))
	return nil
}

func loadTemplate() ([]string, error) {
	rows := append([]string(nil), matchups...)
	if templatePath != "" {
		f, err := os.Open(templatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open template: %w", err)
		}
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" && !strings.HasPrefix(line, "#") {
				rows = append(rows, line)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read template: %w", err)
		}
	}
	if len(rows) == 0 {
		rows = []string{"Romans vs. Samurai"}
	}
	return rows, nil
}

func buildSchedule() ([]generator.BattleRecord, map[string][]byte, error) {
	gen, cfg, overrides, err := setup()
	if err != nil {
		return nil, nil, err
	}
	template, err := loadTemplate()
	if err != nil {
		return nil, nil, err
	}
	records, err := gen.BuildSchedule(context.Background(), template, days, seed, cfg)
	if err != nil {
		return nil, nil, err
	}
	return records, overrides.Files, nil
}

func runSchedule(_ *cobra.Command, _ []string) error {
	records, _, err := buildSchedule()
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(records)
	}
	for _, r := range records {
		fmt.Println(renderRecord(r))
	}
	return nil
}

func runTournament(_ *cobra.Command, args []string) error {
	gen, cfg, _, err := setup()
	if err != nil {
		return err
	}
	res, err := gen.RoundRobin(args, seed, cfg)
	if err != nil {
		return err
	}
	fmt.Println(renderLeaderboard(res))
	return nil
}

func runExport(_ *cobra.Command, _ []string) error {
	records, files, err := buildSchedule()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create bundle: %w", err)
	}
	opts := export.Options{Aspects: export.ParseAspects(aspects), WindowHint: windowHint, Config: files}
	if err := export.Bundle(f, records, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}
	fmt.Println(titleStyle.Render("Bundle written") + " " + outPath + dimStyle.Render(fmt.Sprintf(" (%d days)", len(records))))
	return nil
}

func runFactions(_ *cobra.Command, args []string) error {
	gen, _, _, err := setup()
	if err != nil {
		return err
	}
	reg := gen.Registry()
	names := reg.Names()
	if len(args) == 1 {
		names = reg.Search(args[0])
	}
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		f, _ := reg.Get(n)
		a := f.Attributes
		rows = append(rows, []string{f.Name, f.Era,
			fmt.Sprintf("%d/%d/%d/%d/%d/%d/%d/%d", a.Ranged, a.Cavalry, a.Infantry, a.Armor, a.Discipline, a.Siege, a.Logistics, a.Naval)})
	}
	fmt.Println(renderTable([]string{"Faction", "Era", "Rng/Cav/Inf/Arm/Dis/Sie/Log/Nav"}, rows))
	return nil
}

func runQueue(_ *cobra.Command, _ []string) error {
	records, _, err := buildSchedule()
	if err != nil {
		return err
	}
	queue := export.MidjourneyQueue(export.Cleaned(records), export.ParseAspects(aspects))
	fmt.Println(queue)
	if copyQueue {
		if err := clipboard.WriteAll(queue); err != nil {
			return fmt.Errorf("failed to copy queue: %w", err)
		}
		fmt.Fprintln(os.Stderr, dimStyle.Render("queue copied to clipboard"))
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
