package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/tables"
	"gopkg.in/yaml.v3"
)

// Override file base names looked up in the data directory. Each may be
// .json, .yaml or .yml; the first one found wins.
const (
	FactionsFile   = "user_factions"
	StylePacksFile = "user_style_packs"
	PresetsFile    = "user_presets"
)

var overrideExts = []string{".json", ".yaml", ".yml"}

// Overrides are the user-supplied additions to the built-in tables.
type Overrides struct {
	Factions []faction.Faction
	Rejected []faction.Rejected
	Packs    []tables.StylePack
	Presets  map[string]tables.Preset

	// Files holds the raw bytes of every override file found, keyed by
	// file name, so bundles can carry them.
	Files map[string][]byte
}

// Registry returns the built-in catalog merged with the faction overrides.
func (o Overrides) Registry() *faction.Registry {
	return faction.Default().With(o.Factions...)
}

// Styles returns the built-in styles merged with the pack and preset overrides.
func (o Overrides) Styles() *tables.StyleSet {
	return tables.DefaultStyles().With(o.Packs, o.Presets)
}

// LoadOverrides reads the override files from dataDir. Missing files are
// not an error; a file that is not valid JSON or YAML is.
func LoadOverrides(dataDir string, logger *slog.Logger) (Overrides, error) {
	out := Overrides{Files: map[string][]byte{}}
	if dataDir == "" {
		return out, nil
	}

	name, data, err := readFirst(dataDir, FactionsFile)
	if err != nil {
		return Overrides{}, err
	}
	if data != nil {
		out.Files[name] = data
		out.Factions, out.Rejected, err = faction.DecodeSpecs(data)
		if err != nil {
			return Overrides{}, fmt.Errorf("%s: %w", name, err)
		}
		for _, r := range out.Rejected {
			logger.Warn("Skipping invalid faction override", "file", name, "entry", r.Key, "reason", r.Reason)
		}
		logger.Info("Loaded faction overrides", "file", name, "count", len(out.Factions))
	}

	name, data, err = readFirst(dataDir, StylePacksFile)
	if err != nil {
		return Overrides{}, err
	}
	if data != nil {
		out.Files[name] = data
		out.Packs, err = DecodeStylePacks(data)
		if err != nil {
			return Overrides{}, fmt.Errorf("%s: %w", name, err)
		}
		logger.Info("Loaded style pack overrides", "file", name, "count", len(out.Packs))
	}

	name, data, err = readFirst(dataDir, PresetsFile)
	if err != nil {
		return Overrides{}, err
	}
	if data != nil {
		out.Files[name] = data
		if err := yaml.Unmarshal(data, &out.Presets); err != nil {
			return Overrides{}, fmt.Errorf("%s: failed to parse presets: %w", name, err)
		}
		logger.Info("Loaded preset overrides", "file", name, "count", len(out.Presets))
	}

	return out, nil
}

// DecodeStylePacks parses style packs given either as a list of packs or as
// a mapping of name to pack. Mapping entries are returned sorted by name.
func DecodeStylePacks(data []byte) ([]tables.StylePack, error) {
	var list []tables.StylePack
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var byName map[string]tables.StylePack
	if err := yaml.Unmarshal(data, &byName); err != nil {
		return nil, fmt.Errorf("failed to parse style packs: %w", err)
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p := byName[name]
		if p.Name == "" {
			p.Name = name
		}
		list = append(list, p)
	}
	return list, nil
}

func readFirst(dir, base string) (string, []byte, error) {
	for _, ext := range overrideExts {
		name := base + ext
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return name, data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
	}
	return "", nil, nil
}
