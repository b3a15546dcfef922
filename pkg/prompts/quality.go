package prompts

import (
	"strings"

	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/tables"
	"github.com/jwebster45206/battle-engine/pkg/textfilter"
)

var qualityKeywords = []string{
	"cinematic", "motion blur", "dust", "smoke", "banners", "low-angle", "close-up", "dynamic", "telephoto", "sparks",
}

// HeuristicScore counts quality keywords in prompt, with small bonuses for
// chaos 0 and chaos 12.
func HeuristicScore(prompt string) float64 {
	score := 0.0
	for _, kw := range qualityKeywords {
		if strings.Contains(prompt, kw) {
			score++
		}
	}
	if strings.Contains(prompt, "--chaos 0") {
		score += 0.3
	}
	if strings.Contains(prompt, "--chaos 12") {
		score += 0.2
	}
	return score
}

// Better returns first unless second scores strictly higher.
func Better(first, second string) string {
	if HeuristicScore(first) >= HeuristicScore(second) {
		return first
	}
	return second
}

// BestOf picks the better prompt per aspect ratio.
func BestOf(first, second Pair) Pair {
	return Pair{Wide: Better(first.Wide, second.Wide), Tall: Better(first.Tall, second.Tall)}
}

// ApplyPreset injects the faction's palette and camera after --style raw.
func ApplyPreset(styles *tables.StyleSet, prompt, factionName string) string {
	p, ok := styles.Preset(factionName)
	if !ok {
		return prompt
	}
	return strings.ReplaceAll(prompt, "--style raw", "--style raw, "+p.Palette+", "+p.Camera)
}

// WithPresets applies side A's preset to the wide prompt and side B's to the tall one.
func (p Pair) WithPresets(styles *tables.StyleSet, a, b faction.Faction) Pair {
	return Pair{
		Wide: ApplyPreset(styles, p.Wide, a.Name),
		Tall: ApplyPreset(styles, p.Tall, b.Name),
	}
}

// Lint replaces anachronistic weapons unless either side's era or name
// allows gunpowder, then removes banned words.
func Lint(prompt string, a, b faction.Faction) string {
	f := textfilter.Default()
	if !f.GunpowderAllowed(a.Era, b.Era, a.Name, b.Name) {
		prompt = f.ReplaceAnachronisms(prompt)
	}
	return f.Sanitize(prompt)
}

// Linted lints both prompts.
func (p Pair) Linted(a, b faction.Faction) Pair {
	return Pair{Wide: Lint(p.Wide, a, b), Tall: Lint(p.Tall, a, b)}
}

// Autoclean removes culture tokens absent from matchup and tidies spacing.
func Autoclean(prompt, matchup string) string {
	return textfilter.Default().Autoclean(prompt, matchup)
}
