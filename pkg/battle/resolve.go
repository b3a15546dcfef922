package battle

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/rng"
	"github.com/jwebster45206/battle-engine/pkg/tables"
	"github.com/jwebster45206/battle-engine/pkg/textfilter"
)

// Side identifies one of the two combatants.
type Side int

const (
	SideA Side = iota
	SideB
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

const (
	// JitterRange bounds the uniform noise added to each side's score.
	JitterRange = 0.8

	terrainBonus   = 0.05
	commanderScale = 5.0
	navalOffScale  = 0.2
	marginFloor    = 0.001
)

// Matchup is the resolved context of a single battle. Keys must already be
// validated; the resolver never falls back.
type Matchup struct {
	A, B       faction.Faction
	TerrainKey string
	Scenario   tables.Scenario
	Weather    tables.Weather
	Weights    Weights
	CommanderA tables.CommanderTrait
	CommanderB tables.CommanderTrait
	Naval      bool
}

// Faction returns the faction on side.
func (m Matchup) Faction(side Side) faction.Faction {
	if side == SideA {
		return m.A
	}
	return m.B
}

// Commander returns the commander trait on side.
func (m Matchup) Commander(side Side) tables.CommanderTrait {
	if side == SideA {
		return m.CommanderA
	}
	return m.CommanderB
}

// Score computes the deterministic part of a side's score.
func Score(m Matchup, side Side) float64 {
	f := m.Faction(side).Attributes
	c := m.Commander(side)
	w := m.Weights

	navalScale := navalOffScale
	if m.Naval {
		navalScale = 1.0
	}

	// Infantry and siege carry no commander term.
	base := w.Discipline*(float64(f.Discipline)+commanderScale*c.Discipline) +
		w.Infantry*float64(f.Infantry) +
		w.Armor*(float64(f.Armor)+commanderScale*c.Armor) +
		w.Logistics*(float64(f.Logistics)+commanderScale*c.Logistics) +
		w.Ranged*(float64(f.Ranged)+commanderScale*c.Ranged) +
		w.Cavalry*(float64(f.Cavalry)+commanderScale*c.Cavalry) +
		w.Siege*float64(f.Siege) +
		w.Naval*float64(f.Naval)*navalScale

	if m.Faction(side).PrefersTerrain(m.TerrainKey) {
		base *= 1 + terrainBonus
	}
	base *= 1 + m.Weather.Score
	for _, v := range m.Scenario.Modifiers.Values() {
		base *= 1 + v
	}
	return base
}

// Decide returns the winning side; ties go to A.
func Decide(scoreA, scoreB float64) Side {
	if scoreA >= scoreB {
		return SideA
	}
	return SideB
}

// Margin is the winner's score over the loser's, with the denominator floored.
func Margin(winnerScore, loserScore float64) float64 {
	return winnerScore / max(loserScore, marginFloor)
}

// Outcome is the result of Resolve.
type Outcome struct {
	Winner     Side    `json:"-"`
	WinnerName string  `json:"winner"`
	LoserName  string  `json:"loser"`
	Rationale  string  `json:"rationale"`
	ScoreA     float64 `json:"score_a"`
	ScoreB     float64 `json:"score_b"`
}

// WinnerScore returns the winning side's final score.
func (o Outcome) WinnerScore() float64 {
	if o.Winner == SideA {
		return o.ScoreA
	}
	return o.ScoreB
}

// LoserScore returns the losing side's final score.
func (o Outcome) LoserScore() float64 {
	if o.Winner == SideA {
		return o.ScoreB
	}
	return o.ScoreA
}

// Margin returns Margin(WinnerScore, LoserScore).
func (o Outcome) Margin() float64 {
	return Margin(o.WinnerScore(), o.LoserScore())
}

// CasualtyMargin is the margin fed to the casualty estimator: 1 when either
// score is exactly zero.
func (o Outcome) CasualtyMargin() float64 {
	if o.ScoreA == 0 || o.ScoreB == 0 {
		return 1.0
	}
	return o.Margin()
}

// Resolve scores both sides, adds jitter (A then B), picks the winner and
// writes the rationale. After the jitter it draws one winner motif and one
// loser motif for the visual emphasis line.
func Resolve(m Matchup, s *rng.Stream) Outcome {
	jitterA := s.Uniform(-JitterRange, JitterRange)
	jitterB := s.Uniform(-JitterRange, JitterRange)
	return resolve(m, jitterA, jitterB, s)
}

func resolve(m Matchup, jitterA, jitterB float64, s *rng.Stream) Outcome {
	out := Outcome{
		ScoreA: Score(m, SideA) + jitterA,
		ScoreB: Score(m, SideB) + jitterB,
	}
	out.Winner = Decide(out.ScoreA, out.ScoreB)

	winner := m.Faction(out.Winner)
	loser := m.Faction(out.Winner.Other())
	out.WinnerName, out.LoserName = winner.Name, loser.Name

	reasons := Reasons(m, out.Winner)
	why := fmt.Sprintf("%s win: %s. Margin ~%.2fx. Visual: emphasize %s against %s.",
		winner.Name, strings.Join(reasons, ", "), out.Margin(),
		rng.Choice(s, winner.Motifs), rng.Choice(s, loser.Motifs))
	out.Rationale = textfilter.Clean(why)
	return out
}

// Reasons lists why winner prevailed, closing with the commander edge.
func Reasons(m Matchup, winner Side) []string {
	w := m.Faction(winner)
	l := m.Faction(winner.Other())
	wa, la := w.Attributes, l.Attributes

	var reasons []string
	if wa.Ranged > la.Ranged {
		reasons = append(reasons, "missile superiority set tempo")
	}
	if wa.Cavalry > la.Cavalry {
		reasons = append(reasons, "mobility took the flanks")
	}
	if wa.Discipline > la.Discipline {
		reasons = append(reasons, "cohesion held under pressure")
	}
	if wa.Armor > la.Armor {
		reasons = append(reasons, "protection blunted shock")
	}
	if wa.Logistics > la.Logistics {
		reasons = append(reasons, "supply depth sustained lines")
	}
	if wa.Siege > la.Siege && m.Scenario.Key == tables.ScenarioSiege {
		reasons = append(reasons, "engineers dictated pace")
	}
	if w.PrefersTerrain(m.TerrainKey) && !l.PrefersTerrain(m.TerrainKey) {
		reasons = append(reasons, "terrain familiarity mattered")
	}
	if m.Naval && wa.Naval > la.Naval {
		reasons = append(reasons, "seamanship and ramming skill dominated")
	}
	return append(reasons, "commander edge: "+m.Commander(winner).Key)
}
