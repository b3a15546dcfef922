package generator

import (
	"github.com/jwebster45206/battle-engine/pkg/battle"
	"github.com/jwebster45206/battle-engine/pkg/narrative"
	"github.com/jwebster45206/battle-engine/pkg/tables"
)

// Preset names.
const (
	PresetBalanced  = "Balanced"
	PresetTikTok    = "TikTok Viral"
	PresetHistorian = "Historian"
)

// Config is the explicit run configuration passed into every build.
type Config struct {
	Weights     battle.Weights    `json:"weights" yaml:"weights"`
	WeightMode  battle.WeightMode `json:"weight_mode,omitempty" yaml:"weight_mode"`
	StylePack   string            `json:"style_pack" yaml:"style_pack"`
	Scenario    string            `json:"scenario" yaml:"scenario"`
	Weather     string            `json:"weather" yaml:"weather"`
	CommanderA  string            `json:"commander_a" yaml:"commander_a"`
	CommanderB  string            `json:"commander_b" yaml:"commander_b"`
	Naval       bool              `json:"naval" yaml:"naval"`
	POV         narrative.POV     `json:"pov" yaml:"pov"`
	AltTimeline bool              `json:"alt_timeline" yaml:"alt_timeline"`
	Variants    int               `json:"variants" yaml:"variants"`
}

// DefaultConfig returns the Balanced preset.
func DefaultConfig() Config {
	cfg, _ := Preset(PresetBalanced)
	return cfg
}

// PresetNames lists the named presets.
func PresetNames() []string {
	return []string{PresetBalanced, PresetTikTok, PresetHistorian}
}

// Preset returns a named configuration; unknown names return Balanced and false.
func Preset(name string) (Config, bool) {
	base := Config{
		POV:         narrative.POVMixed,
		AltTimeline: true,
		Variants:    narrative.DefaultVariants,
		Scenario:    tables.ScenarioOpenField,
		WeightMode:  battle.WeightsFixed,
		Weather:     tables.DefaultWeather,
	}
	switch name {
	case PresetTikTok:
		base.Weights = battle.Weights{
			Discipline: 1.2, Infantry: 1.4, Armor: 1.0, Logistics: 1.0,
			Ranged: 1.3, Cavalry: 1.5, Siege: 0.8, Naval: 1.2,
		}
		base.StylePack = "FULL-CRACKED-ASIAN"
		base.Scenario = tables.ScenarioAmbush
		base.Weather = "windy"
		base.CommanderA, base.CommanderB = "aggressive", "aggressive"
		return base, true
	case PresetHistorian:
		base.Weights = battle.Weights{
			Discipline: 1.6, Infantry: 1.2, Armor: 1.2, Logistics: 1.4,
			Ranged: 1.1, Cavalry: 1.0, Siege: 1.1, Naval: 1.0,
		}
		base.StylePack = "Documentary"
		base.CommanderA, base.CommanderB = "cunning", "defensive"
		return base, true
	}
	base.Weights = battle.BalancedWeights()
	base.StylePack = tables.DefaultStylePack
	base.CommanderA, base.CommanderB = "aggressive", "defensive"
	return base, name == PresetBalanced
}
