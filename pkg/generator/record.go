package generator

import (
	"github.com/jwebster45206/battle-engine/pkg/battle"
)

// BattleRecord is every derived field for one matchup. It is immutable once
// built.
type BattleRecord struct {
	Day         string `json:"day"`
	Index       int    `json:"index"`
	SideA       string `json:"side_a"`
	SideB       string `json:"side_b"`
	Matchup     string `json:"matchup"`
	Seed        int64  `json:"seed"`
	Terrain     string `json:"terrain"`
	TerrainDesc string `json:"terrain_desc"`
	Scenario    string `json:"scenario"`
	Weather     string `json:"weather"`

	PromptWide string `json:"prompt_16_9"`
	PromptTall string `json:"prompt_9_16"`

	Context     string           `json:"context"`
	Analysis    string           `json:"analysis"`
	Winner      string           `json:"winner"`
	Rationale   string           `json:"rationale"`
	Attacker    string           `json:"attacker"`
	Duration    string           `json:"duration"`
	SizeA       int              `json:"size_a"`
	SizeB       int              `json:"size_b"`
	CasualtiesA battle.Breakdown `json:"casualties_a"`
	CasualtiesB battle.Breakdown `json:"casualties_b"`
	RateA       float64          `json:"casualty_rate_a"`
	RateB       float64          `json:"casualty_rate_b"`

	LoreHook     string   `json:"lore_hook"`
	TacticalBeat string   `json:"tactical_beat"`
	FanPrompt    string   `json:"fan_prompt"`
	VOScript     string   `json:"vo_script"`
	Tone         string   `json:"tone"`
	Quote        string   `json:"quote,omitempty"`
	StyleUsed    string   `json:"style_used"`
	VariantHooks []string `json:"variant_hooks"`
	VariantVOs   []string `json:"variant_vos"`
	AltWinner    string   `json:"alt_winner,omitempty"`
	AltVO        string   `json:"alt_vo,omitempty"`

	PollQuestion string    `json:"poll_question"`
	PollOptions  [3]string `json:"poll_options"`
	Caption      string    `json:"caption"`

	ScoreA  float64        `json:"score_a"`
	ScoreB  float64        `json:"score_b"`
	Weights battle.Weights `json:"weights"`
}

// Variant returns the i-th variant hook and voiceover, or empty strings.
func (r BattleRecord) Variant(i int) (hook, vo string) {
	if i < 0 || i >= len(r.VariantHooks) {
		return "", ""
	}
	return r.VariantHooks[i], r.VariantVOs[i]
}
