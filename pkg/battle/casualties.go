package battle

import (
	"fmt"
	"math"

	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/rng"
	"github.com/jwebster45206/battle-engine/pkg/tables"
)

// ForceRange returns the [min,max] army size for a scenario.
func ForceRange(scenarioKey string, naval bool) (int, int) {
	switch {
	case naval || scenarioKey == tables.ScenarioNaval:
		return 1500, 8000
	case scenarioKey == tables.ScenarioSiege:
		return 8000, 50000
	default:
		return 6000, 45000
	}
}

// EstimateForces draws both army sizes, A then B. Per side it draws a scale
// jitter then a base size; logistics raises the scale.
func EstimateForces(a, b faction.Faction, scenarioKey string, naval bool, s *rng.Stream) (int, int) {
	lo, hi := ForceRange(scenarioKey, naval)
	size := func(f faction.Faction) int {
		scale := 0.6 + 0.1*float64(f.Attributes.Logistics) + s.Uniform(-0.05, 0.05)
		v := scale * float64(s.IntBetween(lo, hi))
		return int(max(float64(lo), min(float64(hi), v)))
	}
	sizeA := size(a)
	sizeB := size(b)
	return sizeA, sizeB
}

// Intensity is the base casualty rate of a scenario.
func Intensity(scenarioKey string) float64 {
	switch scenarioKey {
	case tables.ScenarioAmbush:
		return 0.30
	case tables.ScenarioRiverCrossing:
		return 0.28
	case tables.ScenarioHillDefense:
		return 0.24
	case tables.ScenarioSiege:
		return 0.35
	case tables.ScenarioNaval:
		return 0.26
	default:
		return 0.22
	}
}

// Rate bounds after every adjustment.
const (
	MinWinnerRate = 0.01
	MaxWinnerRate = 0.30
	MinLoserRate  = 0.08
	MaxLoserRate  = 0.65
)

func clampRate(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Rates returns the winner and loser casualty fractions.
func Rates(scenarioKey string, w tables.Weather, margin float64, attackerWon bool) (winnerRate, loserRate float64) {
	intensity := Intensity(scenarioKey)
	loserRate = clampRate(intensity*(0.8+0.6*(margin-1)), 0.12, 0.65)
	winnerRate = clampRate(intensity*(0.35-0.2*(margin-1)), 0.03, 0.28)

	switch scenarioKey {
	case tables.ScenarioAmbush:
		loserRate *= 1.15
		winnerRate *= 0.9
	case tables.ScenarioRiverCrossing:
		if attackerWon {
			winnerRate *= 1.05
		} else {
			winnerRate *= 1.2
			loserRate *= 0.95
		}
	case tables.ScenarioSiege:
		winnerRate *= 1.1
		loserRate *= 1.2
	}

	if w.Score < 0 {
		factor := math.Max(0.85, 1+w.Score)
		winnerRate *= factor
		loserRate *= factor
	}

	return clampRate(winnerRate, MinWinnerRate, MaxWinnerRate), clampRate(loserRate, MinLoserRate, MaxLoserRate)
}

// Breakdown splits one side's casualties.
type Breakdown struct {
	Killed   int `json:"killed"`
	Wounded  int `json:"wounded"`
	Captured int `json:"captured"`
	Total    int `json:"total"`
}

// Split draws killed then wounded shares of rate×size; captured is the
// non-negative remainder.
func Split(size int, rate float64, s *rng.Stream) Breakdown {
	lost := rate * float64(size)
	killed := int(lost * s.Uniform(0.30, 0.45))
	wounded := int(lost * s.Uniform(0.45, 0.60))
	captured := max(0, int(lost)-killed-wounded)
	return Breakdown{Killed: killed, Wounded: wounded, Captured: captured, Total: killed + wounded + captured}
}

// DurationBounds returns the hour bounds for a field battle, or the day
// bounds for a siege.
func DurationBounds(scenarioKey string) (lo, hi int) {
	switch scenarioKey {
	case tables.ScenarioAmbush:
		return 2, 5
	case tables.ScenarioNaval:
		return 3, 8
	case tables.ScenarioSiege:
		return 3, 21
	default:
		return 6, 12
	}
}

// Duration draws how long the battle lasted. A siege draws one day count
// ("9 days"). Anything else draws a start hour in [lo, hi-1] then an end
// hour in [start+1, hi] ("7-10 hours").
func Duration(scenarioKey string, s *rng.Stream) string {
	lo, hi := DurationBounds(scenarioKey)
	if scenarioKey == tables.ScenarioSiege {
		return fmt.Sprintf("%d days", s.IntBetween(lo, hi))
	}
	start := s.IntBetween(lo, hi-1)
	end := s.IntBetween(start+1, hi)
	return fmt.Sprintf("%d-%d hours", start, end)
}

// Casualties is the estimator's result for both sides.
type Casualties struct {
	RateA    float64   `json:"rate_a"`
	RateB    float64   `json:"rate_b"`
	PercentA float64   `json:"percent_a"`
	PercentB float64   `json:"percent_b"`
	A        Breakdown `json:"a"`
	B        Breakdown `json:"b"`
	Duration string    `json:"duration"`
}

// CasualtyInput carries everything EstimateCasualties reads.
type CasualtyInput struct {
	Winner   Side
	Attacker Side
	Margin   float64
	Scenario string
	Weather  tables.Weather
	SizeA    int
	SizeB    int
}

// EstimateCasualties computes rates, then draws A's split, B's split and the
// duration, in that order.
func EstimateCasualties(in CasualtyInput, s *rng.Stream) Casualties {
	winnerRate, loserRate := Rates(in.Scenario, in.Weather, in.Margin, in.Attacker == in.Winner)
	rateA, rateB := winnerRate, loserRate
	if in.Winner == SideB {
		rateA, rateB = loserRate, winnerRate
	}

	c := Casualties{RateA: rateA, RateB: rateB, PercentA: percent(rateA), PercentB: percent(rateB)}
	c.A = Split(in.SizeA, rateA, s)
	c.B = Split(in.SizeB, rateB, s)
	c.Duration = Duration(in.Scenario, s)
	return c
}

func percent(rate float64) float64 {
	return math.Round(rate*1000) / 10
}
