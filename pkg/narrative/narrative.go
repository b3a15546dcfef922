// Package narrative turns a resolved battle into text: the scene-setting
// context, the phased analysis, lore hooks and voiceover, alternate-timeline
// variants, the audience poll and the post caption.
package narrative

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jwebster45206/battle-engine/pkg/battle"
	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/rng"
	"github.com/jwebster45206/battle-engine/pkg/tables"
	"github.com/jwebster45206/battle-engine/pkg/textfilter"
)

var numbers = message.NewPrinter(language.English)

// Context draws one motif per side (A then B) and describes the deployment.
func Context(a, b faction.Faction, terrainDesc string, scenario tables.Scenario, s *rng.Stream) string {
	txt := fmt.Sprintf("On %s, %s. %s deploy with %s and drilled formations; "+
		"%s answer with %s from the %s. Scouts test flanks, missiles trade, then main bodies commit.",
		terrainDesc, scenario.Description,
		a.Name, rng.Choice(s, a.Motifs),
		b.Name, rng.Choice(s, b.Motifs), b.Era)
	return textfilter.Clean(txt)
}

// DeepInput is the resolved state the phased analysis describes.
type DeepInput struct {
	A, B        faction.Faction
	Winner      battle.Side
	Attacker    battle.Side
	TerrainDesc string
	Scenario    string
	Weather     tables.Weather
	Casualties  battle.Casualties
}

// Phases returns the four battle phases in order.
func Phases(in DeepInput) []string {
	phases := []string{
		fmt.Sprintf("Opening: light troops screen and probe under %s on %s.", conditions(in.Weather), in.TerrainDesc),
	}
	if in.Scenario == tables.ScenarioAmbush || in.Scenario == tables.ScenarioRiverCrossing {
		phases = append(phases, "Disruption: the defender reels as the attacker forces the tempo and shapes the field.")
	} else {
		phases = append(phases, "Main engagement: lines close; missiles and engines set a brutal pace before infantry clinch.")
	}

	var swing string
	if in.Winner == battle.SideA {
		swing = fmt.Sprintf("%s gain momentum—cohesion holds while pressure builds on %s's flank.", in.A.Name, in.B.Name)
	} else {
		swing = fmt.Sprintf("%s turn the tide—discipline and timing crack %s's line.", in.B.Name, in.A.Name)
	}
	phases = append(phases, "Turning point: "+swing)
	return append(phases, "Collapse: reserves commit, one wing buckles and a controlled pursuit seals the result.")
}

// CasualtyLine summarises both sides' losses with thousands separators.
func CasualtyLine(a, b faction.Faction, c battle.Casualties) string {
	side := func(name string, br battle.Breakdown) string {
		return numbers.Sprintf("%s: %d (K:%d W:%d C:%d)", name, br.Total, br.Killed, br.Wounded, br.Captured)
	}
	return "Casualties — " + side(a.Name, c.A) + " · " + side(b.Name, c.B) + "."
}

// Deep builds the phased analysis. It draws nothing.
func Deep(in DeepInput) string {
	side := func(s battle.Side) string {
		if s == battle.SideA {
			return in.A.Name
		}
		return in.B.Name
	}
	txt := fmt.Sprintf("Attacker: %s. Conditions: %s, %s. \nPhases: %s \nOutcome: %s carry the field after %s. %s",
		side(in.Attacker), in.Scenario, conditions(in.Weather),
		strings.Join(Phases(in), " | "),
		side(in.Winner), in.Casualties.Duration, CasualtyLine(in.A, in.B, in.Casualties))
	return textfilter.Clean(txt)
}

func conditions(w tables.Weather) string {
	return strings.Trim(w.Visibility, ", ")
}

// Poll is an audience question with three options.
type Poll struct {
	Question string    `json:"question"`
	Options  [3]string `json:"options"`
}

var pollQuestions = map[string]string{
	tables.ScenarioOpenField:     "What wins today?",
	tables.ScenarioAmbush:        "Surprise or discipline—who prevails?",
	tables.ScenarioRiverCrossing: "Hold the ford or force it?",
	tables.ScenarioHillDefense:   "Height or momentum?",
	tables.ScenarioSiege:         "Engines or endurance?",
	tables.ScenarioNaval:         "Rams or missiles at sea?",
}

// BuildPoll returns the scenario's poll.
func BuildPoll(scenarioKey string) Poll {
	q, ok := pollQuestions[scenarioKey]
	if !ok {
		q = "What wins this battle?"
	}
	p := Poll{Question: q, Options: [3]string{"Discipline", "Cavalry", "Archers"}}
	if scenarioKey == tables.ScenarioRiverCrossing || scenarioKey == tables.ScenarioNaval {
		p.Options[2] = "Missiles"
	}
	return p
}

var captions = []string{
	"Who wins? Vote below. #HypotheticalBattles",
	"Your call. Tactics > luck. Vote.",
	"Decide it in the comments.",
	"Lore or logistics—what wins?",
}

// Caption rotates through the post captions by seed+index.
func Caption(seed, index int64) string {
	n := int64(len(captions))
	return captions[((seed+index)%n+n)%n]
}
