package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/battle-engine/internal/storage"
	"github.com/jwebster45206/battle-engine/pkg/battle"
	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/jwebster45206/battle-engine/pkg/narrative"
	"github.com/jwebster45206/battle-engine/pkg/tables"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <file>...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Files are recognised by name: %s, %s, %s (.json/.yaml/.yml); anything else is read as a run config.\n",
			storage.FactionsFile, storage.StylePacksFile, storage.PresetsFile)
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		validator := &OverrideValidator{}
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		for _, w := range validator.warnings {
			fmt.Printf("  warning: %s\n", w)
		}
		fmt.Printf("%s is valid!\n", filename)
	}
	if failed {
		os.Exit(1)
	}
}

type OverrideValidator struct {
	errors   []string
	warnings []string
}

func (v *OverrideValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("override file must be .json, .yaml or .yml: %s", filepath.Base(filename))
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors, v.warnings = nil, nil
	switch strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)) {
	case storage.FactionsFile:
		v.validateFactions(data)
	case storage.StylePacksFile:
		v.validateStylePacks(data)
	case storage.PresetsFile:
		v.validatePresets(data)
	default:
		v.validateRunConfig(data)
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *OverrideValidator) validateFactions(data []byte) {
	factions, rejected, err := faction.DecodeSpecs(data)
	if err != nil {
		v.addError(err.Error())
		return
	}
	for _, r := range rejected {
		v.addError(fmt.Sprintf("entry %s: %s", r.Key, r.Reason))
	}

	// Compare against the raw ratings to flag values that will be clamped.
	var raw []faction.Spec
	if yaml.Unmarshal(data, &raw) == nil {
		for _, s := range raw {
			for _, r := range []*int{s.Ranged, s.Cavalry, s.Infantry, s.Armor, s.Discipline, s.Siege, s.Logistics, s.Naval} {
				if r != nil && (*r < 0 || *r > 5) {
					v.warnings = append(v.warnings, fmt.Sprintf("faction %q has ratings outside 0-5; they will be clamped", s.Name))
					break
				}
			}
		}
	}

	seen := map[string]bool{}
	for _, f := range factions {
		if seen[f.Name] {
			v.warnings = append(v.warnings, fmt.Sprintf("faction %q is defined more than once; the last definition wins", f.Name))
		}
		seen[f.Name] = true
		if _, builtin := faction.Default().Get(f.Name); builtin {
			v.warnings = append(v.warnings, fmt.Sprintf("faction %q replaces a built-in faction", f.Name))
		}
	}
}

func (v *OverrideValidator) validateStylePacks(data []byte) {
	packs, err := storage.DecodeStylePacks(data)
	if err != nil {
		v.addError(err.Error())
		return
	}
	for i, p := range packs {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			v.addError(fmt.Sprintf("style pack %s: name is required", name))
		}
		if len(p.Add) == 0 {
			v.addError(fmt.Sprintf("style pack %s: add must list at least one descriptor", name))
		}
		if len(p.Stylize) == 0 {
			v.addError(fmt.Sprintf("style pack %s: s must list at least one stylize value", name))
		}
		for _, s := range p.Stylize {
			if s <= 0 || s > 1000 {
				v.addError(fmt.Sprintf("style pack %s: stylize value %d must be in 1-1000", name, s))
			}
		}
		if tables.IsRandomSelector(p.Name) || tables.IsRotateSelector(p.Name) {
			v.addError(fmt.Sprintf("style pack %s: name is reserved", name))
		}
	}
}

func (v *OverrideValidator) validatePresets(data []byte) {
	var presets map[string]tables.Preset
	if err := yaml.Unmarshal(data, &presets); err != nil {
		v.addError(fmt.Sprintf("failed to parse presets: %v", err))
		return
	}
	for name, p := range presets {
		if strings.TrimSpace(p.Palette) == "" && strings.TrimSpace(p.Camera) == "" {
			v.addError(fmt.Sprintf("preset %q: palette or camera is required", name))
		}
	}
}

func (v *OverrideValidator) validateRunConfig(data []byte) {
	var cfg generator.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		v.addError(fmt.Sprintf("failed to parse run config: %v", err))
		return
	}
	if cfg.Weights != (generator.Config{}).Weights && !cfg.Weights.Valid() {
		v.addError("weights must all be positive")
	}
	if cfg.Scenario != "" {
		if _, ok := tables.LookupScenario(cfg.Scenario); !ok {
			v.addError(fmt.Sprintf("unknown scenario %q", cfg.Scenario))
		}
	}
	if cfg.Weather != "" {
		if _, ok := tables.LookupWeather(cfg.Weather); !ok {
			v.addError(fmt.Sprintf("unknown weather %q", cfg.Weather))
		}
	}
	for _, c := range []string{cfg.CommanderA, cfg.CommanderB} {
		if c == "" {
			continue
		}
		if _, ok := tables.LookupCommander(c); !ok {
			v.addError(fmt.Sprintf("unknown commander %q", c))
		}
	}
	if cfg.POV != "" && narrative.ParsePOV(string(cfg.POV)) != cfg.POV {
		v.addError(fmt.Sprintf("unknown pov %q", cfg.POV))
	}
	if cfg.Variants < 0 {
		v.addError("variants must not be negative")
	}
	if cfg.Variants > narrative.MaxVariants {
		v.warnings = append(v.warnings, fmt.Sprintf("variants %d will be clamped to %d", cfg.Variants, narrative.MaxVariants))
	}
	if _, ok := battle.ParseWeightMode(string(cfg.WeightMode)); !ok {
		v.addError(fmt.Sprintf("unknown weight mode %q", cfg.WeightMode))
	}
	if p := cfg.StylePack; p != "" && !tables.IsRandomSelector(p) && !tables.IsRotateSelector(p) {
		if _, ok := tables.DefaultStyles().Pack(p); !ok {
			v.warnings = append(v.warnings, fmt.Sprintf("style pack %q is not built in; it must come from %s", p, storage.StylePacksFile))
		}
	}
}

func (v *OverrideValidator) addError(msg string) {
	v.errors = append(v.errors, msg)
}
