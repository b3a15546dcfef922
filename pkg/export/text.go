package export

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/jwebster45206/battle-engine/pkg/prompts"
)

// Aspects selects which prompts go into the Midjourney queue.
type Aspects string

const (
	AspectsWide Aspects = "169"
	AspectsTall Aspects = "916"
	AspectsBoth Aspects = "both"
)

// ParseAspects maps a flag value to Aspects; anything unknown means both.
func ParseAspects(s string) Aspects {
	switch Aspects(strings.TrimSpace(s)) {
	case AspectsWide, "16:9", "wide":
		return AspectsWide
	case AspectsTall, "9:16", "tall":
		return AspectsTall
	}
	return AspectsBoth
}

// MidjourneyQueue returns one /imagine line per selected prompt.
func MidjourneyQueue(records []generator.BattleRecord, aspects Aspects) string {
	var lines []string
	for _, r := range records {
		if aspects == AspectsWide || aspects == AspectsBoth {
			lines = append(lines, fmt.Sprintf("/imagine prompt: %s  # %s", r.PromptWide, r.Matchup))
		}
		if aspects == AspectsTall || aspects == AspectsBoth {
			lines = append(lines, fmt.Sprintf("/imagine prompt: %s  # %s", r.PromptTall, r.Matchup))
		}
	}
	return strings.Join(lines, "\n")
}

// CardName is the bundle path of a record's Markdown card.
func CardName(r generator.BattleRecord) string {
	return "cards/" + strings.ReplaceAll(strings.ToLower(r.Day), " ", "-") + ".md"
}

// Card renders a record as a Markdown card.
func Card(r generator.BattleRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s - %s\nSeed: %d\n\n", r.Day, r.Matchup, r.Seed)
	field := func(name, value string) { fmt.Fprintf(&b, "**%s**: %s\n\n", name, value) }

	field("MidJourney 16:9", prompts.Autoclean(r.PromptWide, r.Matchup))
	field("MidJourney 9:16", prompts.Autoclean(r.PromptTall, r.Matchup))
	field("Context", r.Context)
	field("Analysis", r.Analysis)
	field("Who Won?", r.Winner)
	field("Why They Won", r.Rationale)
	field("Attacker", r.Attacker)
	field("Duration", r.Duration)
	fmt.Fprintf(&b, "**Casualties**:\n\n- %s: %d total (%g%%)\n- %s: %d total (%g%%)\n\n",
		r.SideA, r.CasualtiesA.Total, r.RateA, r.SideB, r.CasualtiesB.Total, r.RateB)
	field("Caption", r.Caption)
	field("Hook", r.LoreHook)
	field("Tactical Beat", r.TacticalBeat)
	field("Fan Prompt", r.FanPrompt)
	field("VO Script", r.VOScript)
	return b.String()
}

// AutoPasteScript builds an AutoHotkey v1 script that pastes each queue line
// into the window matching windowHint when F8 is pressed.
func AutoPasteScript(queue, windowHint string) string {
	var quoted []string
	for _, raw := range strings.Split(queue, "\n") {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		quoted = append(quoted, `"`+strings.ReplaceAll(s, `"`, `""`)+`"`)
	}
	return fmt.Sprintf(`; AutoHotkey v1 script - paste Midjourney prompts
#SingleInstance Force
SetTitleMatchMode, 2
SetKeyDelay, 50, 20

WinActivate, %s
Sleep, 800

lines := [
    %s
]

F8::
for i, s in lines
{
    Clipboard := s
    Sleep, 100
    Send, ^v
    Sleep, 250
    Send, {Enter}
    Sleep, 1500
}
return
`, windowHint, strings.Join(quoted, ",\n    "))
}
