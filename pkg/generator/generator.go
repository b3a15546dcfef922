// Package generator orchestrates battle records: it validates a run
// configuration at the boundary, reseeds the stream per item and sequences
// every step in a fixed draw order.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jwebster45206/battle-engine/pkg/battle"
	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/narrative"
	"github.com/jwebster45206/battle-engine/pkg/prompts"
	"github.com/jwebster45206/battle-engine/pkg/rng"
	"github.com/jwebster45206/battle-engine/pkg/tables"
	"github.com/jwebster45206/battle-engine/pkg/tournament"
)

var (
	// ErrEmptyTemplate is returned when a schedule has no template rows.
	ErrEmptyTemplate = errors.New("schedule template is empty")
	// ErrInvalidDays is returned for a day count outside [1, MaxDays].
	ErrInvalidDays = errors.New("days out of range")
)

// MaxDays caps a single schedule.
const MaxDays = 180

// Generator builds records from a fixed registry and style set.
type Generator struct {
	registry *faction.Registry
	styles   *tables.StyleSet
	logger   *slog.Logger
}

// New creates a generator. Nil arguments select the built-in registry,
// the built-in styles and the default logger.
func New(registry *faction.Registry, styles *tables.StyleSet, logger *slog.Logger) *Generator {
	if registry == nil {
		registry = faction.Default()
	}
	if styles == nil {
		styles = tables.DefaultStyles()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{registry: registry, styles: styles, logger: logger}
}

// Registry returns the faction registry.
func (g *Generator) Registry() *faction.Registry { return g.registry }

// Styles returns the style set.
func (g *Generator) Styles() *tables.StyleSet { return g.styles }

// Normalize replaces unknown keys and invalid values with documented
// defaults, logging each substitution.
func (g *Generator) Normalize(cfg Config) Config {
	if _, ok := tables.LookupScenario(cfg.Scenario); !ok {
		g.logger.Warn("Unknown scenario, using default", "scenario", cfg.Scenario, "default", tables.DefaultScenario)
		cfg.Scenario = tables.DefaultScenario
	}
	if _, ok := tables.LookupWeather(cfg.Weather); !ok {
		g.logger.Warn("Unknown weather, using default", "weather", cfg.Weather, "default", tables.DefaultWeather)
		cfg.Weather = tables.DefaultWeather
	}
	if _, ok := tables.LookupCommander(cfg.CommanderA); !ok {
		g.logger.Warn("Unknown commander trait, using default", "side", "A", "trait", cfg.CommanderA, "default", tables.DefaultCommander)
		cfg.CommanderA = tables.DefaultCommander
	}
	if _, ok := tables.LookupCommander(cfg.CommanderB); !ok {
		g.logger.Warn("Unknown commander trait, using default", "side", "B", "trait", cfg.CommanderB, "default", tables.DefaultCommander)
		cfg.CommanderB = tables.DefaultCommander
	}
	if _, ok := g.styles.Pack(cfg.StylePack); !ok && !tables.IsRandomSelector(cfg.StylePack) && !tables.IsRotateSelector(cfg.StylePack) {
		g.logger.Warn("Unknown style pack, using default", "style_pack", cfg.StylePack, "default", tables.DefaultStylePack)
		cfg.StylePack = tables.DefaultStylePack
	}
	mode, ok := battle.ParseWeightMode(string(cfg.WeightMode))
	if !ok {
		g.logger.Warn("Unknown weight mode, using fixed weights", "weight_mode", cfg.WeightMode)
	}
	cfg.WeightMode = mode
	if !cfg.Weights.Valid() {
		g.logger.Warn("Weights must all be positive, using balanced weights", "weights", cfg.Weights)
		cfg.Weights = battle.BalancedWeights()
	}
	cfg.POV = narrative.ParsePOV(string(cfg.POV))
	if cfg.Variants < 1 {
		cfg.Variants = narrative.DefaultVariants
	}
	if cfg.Variants > narrative.MaxVariants {
		g.logger.Warn("Too many lore variants, clamping", "variants", cfg.Variants, "max", narrative.MaxVariants)
		cfg.Variants = narrative.MaxVariants
	}
	return cfg
}

// Sides resolves two faction names, falling back to Romans and Samurai.
func (g *Generator) Sides(aName, bName string) (faction.Faction, faction.Faction) {
	a, ok := g.registry.LookupOr(aName, faction.DefaultSideA)
	if !ok {
		g.logger.Warn("Unknown faction, using default", "faction", aName, "default", faction.DefaultSideA)
	}
	b, ok := g.registry.LookupOr(bName, faction.DefaultSideB)
	if !ok {
		g.logger.Warn("Unknown faction, using default", "faction", bName, "default", faction.DefaultSideB)
	}
	return a, b
}

// BuildBattleRecord builds the record for item index, reseeding to
// seedBase+index. Identical inputs give identical records.
func (g *Generator) BuildBattleRecord(a, b faction.Faction, seedBase int64, index int, cfg Config) (BattleRecord, error) {
	cfg = g.Normalize(cfg)
	seed := seedBase + int64(index)
	s := rng.New(seed)

	scenario := tables.ScenarioOrDefault(cfg.Scenario)
	weather := tables.WeatherOrDefault(cfg.Weather)
	cmdA, cmdB := tables.Commander(cfg.CommanderA), tables.Commander(cfg.CommanderB)

	terrainKey := battle.PickTerrainKey(a, b, cfg.Naval, s)
	terrainDesc := battle.PickTerrainDescription(terrainKey, weather, s)

	candidates := make([]prompts.Pair, 0, 2)
	for _, rotation := range []int{index, index + 1} {
		p, err := prompts.New(g.styles).
			WithFactions(a, b).
			WithTerrain(terrainDesc).
			WithStyle(cfg.StylePack).
			WithRotation(rotation).
			Build(s)
		if err != nil {
			return BattleRecord{}, fmt.Errorf("build prompts: %w", err)
		}
		candidates = append(candidates, p.WithPresets(g.styles, a, b).Linted(a, b))
	}
	pair := prompts.BestOf(candidates[0], candidates[1])

	ctxText := narrative.Context(a, b, terrainDesc, scenario, s)

	// randomized weights are the only draw between the context text and resolution
	weights := cfg.WeightMode.WeightsFor(cfg.Weights, a, b, scenario, cfg.Naval, s)
	m := battle.Matchup{
		A: a, B: b,
		TerrainKey: terrainKey,
		Scenario:   scenario,
		Weather:    weather,
		Weights:    weights,
		CommanderA: cmdA,
		CommanderB: cmdB,
		Naval:      cfg.Naval,
	}
	out := battle.Resolve(m, s)
	attacker := battle.ChooseAttacker(a, b, cmdA, cmdB, s)
	sizeA, sizeB := battle.EstimateForces(a, b, scenario.Key, cfg.Naval, s)
	cas := battle.EstimateCasualties(battle.CasualtyInput{
		Winner:   out.Winner,
		Attacker: attacker,
		Margin:   out.CasualtyMargin(),
		Scenario: scenario.Key,
		Weather:  weather,
		SizeA:    sizeA,
		SizeB:    sizeB,
	}, s)

	deep := narrative.Deep(narrative.DeepInput{
		A: a, B: b,
		Winner:      out.Winner,
		Attacker:    attacker,
		TerrainDesc: terrainDesc,
		Scenario:    scenario.Key,
		Weather:     weather,
		Casualties:  cas,
	})

	loreIn := narrative.LoreInput{
		A: a, B: b,
		Winner:      out.WinnerName,
		Loser:       out.LoserName,
		Attacker:    m.Faction(attacker).Name,
		TerrainDesc: terrainDesc,
		Duration:    cas.Duration,
	}
	lore := narrative.Generate(loreIn, index, cfg.POV, s)
	variants := narrative.Variants(loreIn, index, cfg.Variants, cfg.POV, s)
	var alt narrative.Alt
	if cfg.AltTimeline {
		alt = narrative.AltTimeline(loreIn, index, s)
	}
	styleUsed := prompts.ResolveStyleName(g.styles, cfg.StylePack, index, s)
	poll := narrative.BuildPoll(scenario.Key)

	rec := BattleRecord{
		Day:          fmt.Sprintf("Day %d", index+1),
		Index:        index,
		SideA:        a.Name,
		SideB:        b.Name,
		Matchup:      a.Name + " vs " + b.Name,
		Seed:         seed,
		Terrain:      terrainKey,
		TerrainDesc:  terrainDesc,
		Scenario:     scenario.Key,
		Weather:      weather.Key,
		PromptWide:   pair.Wide,
		PromptTall:   pair.Tall,
		Context:      ctxText,
		Analysis:     deep,
		Winner:       out.WinnerName,
		Rationale:    out.Rationale,
		Attacker:     m.Faction(attacker).Name,
		Duration:     cas.Duration,
		SizeA:        sizeA,
		SizeB:        sizeB,
		CasualtiesA:  cas.A,
		CasualtiesB:  cas.B,
		RateA:        cas.PercentA,
		RateB:        cas.PercentB,
		LoreHook:     lore.Hook,
		TacticalBeat: lore.Tactical,
		FanPrompt:    lore.Fan,
		VOScript:     lore.VO,
		Tone:         string(lore.Tone),
		Quote:        lore.Quote,
		StyleUsed:    styleUsed,
		AltWinner:    alt.Winner,
		AltVO:        alt.VO,
		PollQuestion: poll.Question,
		PollOptions:  poll.Options,
		Caption:      narrative.Caption(seedBase, int64(index)),
		ScoreA:       out.ScoreA,
		ScoreB:       out.ScoreB,
		Weights:      weights,
	}
	for _, v := range variants {
		rec.VariantHooks = append(rec.VariantHooks, v.Hook)
		rec.VariantVOs = append(rec.VariantVOs, v.VO)
	}
	return rec, nil
}

// ParseMatchup splits a template row such as "Romans vs. Samurai". Rows
// without "vs" report false.
func ParseMatchup(row string) (string, string, bool) {
	parts := strings.Split(row, "vs")
	if len(parts) < 2 {
		return "", "", false
	}
	clean := func(s string) string { return strings.TrimSpace(strings.ReplaceAll(s, ".", "")) }
	return clean(parts[0]), clean(parts[1]), true
}

// ValidateSchedule checks the template and day count of a schedule request.
func ValidateSchedule(template []string, days int) error {
	if len(template) == 0 {
		return ErrEmptyTemplate
	}
	if days <= 0 || days > MaxDays {
		return fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidDays, days, MaxDays)
	}
	return nil
}

// BuildSchedule builds one record per day, cycling through template rows.
// Any failure returns an error and no records.
func (g *Generator) BuildSchedule(ctx context.Context, template []string, days int, seedBase int64, cfg Config) ([]BattleRecord, error) {
	if err := ValidateSchedule(template, days); err != nil {
		return nil, err
	}
	cfg = g.Normalize(cfg)

	records := make([]BattleRecord, 0, days)
	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("schedule cancelled at day %d: %w", i+1, err)
		}
		row := template[i%len(template)]
		aName, bName, ok := ParseMatchup(row)
		if !ok {
			g.logger.Warn("Template row has no matchup, using defaults", "row", row, "day", i+1)
			aName, bName = faction.DefaultSideA, faction.DefaultSideB
		}
		a, b := g.Sides(aName, bName)
		rec, err := g.BuildBattleRecord(a, b, seedBase, i, cfg)
		if err != nil {
			return nil, fmt.Errorf("build day %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	g.logger.Debug("Built schedule", "days", days, "seed", seedBase)
	return records, nil
}

// RoundRobin plays a bracket between the named factions. Unknown names are
// rejected; repeated names play once.
func (g *Generator) RoundRobin(names []string, seed int64, cfg Config) (tournament.Result, error) {
	cfg = g.Normalize(cfg)
	seen := make(map[string]bool, len(names))
	fs := make([]faction.Faction, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		f, err := g.registry.Lookup(n)
		if err != nil {
			return tournament.Result{}, err
		}
		fs = append(fs, f)
	}

	res := tournament.RunRoundRobin(fs, seed, tournament.Rules{
		Scenario:   tables.ScenarioOrDefault(cfg.Scenario),
		Weather:    tables.WeatherOrDefault(cfg.Weather),
		Weights:    cfg.Weights,
		WeightMode: cfg.WeightMode,
		CommanderA: tables.Commander(cfg.CommanderA),
		CommanderB: tables.Commander(cfg.CommanderB),
		Naval:      cfg.Naval,
	})
	g.logger.Debug("Round robin complete", "factions", len(fs), "matches", len(res.Matches))
	return res, nil
}
