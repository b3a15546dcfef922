// Package battle resolves a single matchup: scores, winner, rationale, the
// attacking side, force sizes and casualties. Every random draw comes from
// the caller's stream, in the order documented on each function.
package battle

import (
	"strings"

	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/rng"
	"github.com/jwebster45206/battle-engine/pkg/tables"
)

// Weights holds one positive multiplier per attribute.
type Weights struct {
	Ranged     float64 `json:"ranged" yaml:"ranged"`
	Cavalry    float64 `json:"cavalry" yaml:"cavalry"`
	Infantry   float64 `json:"infantry" yaml:"infantry"`
	Armor      float64 `json:"armor" yaml:"armor"`
	Discipline float64 `json:"discipline" yaml:"discipline"`
	Siege      float64 `json:"siege" yaml:"siege"`
	Logistics  float64 `json:"logistics" yaml:"logistics"`
	Naval      float64 `json:"naval" yaml:"naval"`
}

// Valid reports whether every weight is strictly positive.
func (w Weights) Valid() bool {
	for _, v := range []float64{w.Ranged, w.Cavalry, w.Infantry, w.Armor, w.Discipline, w.Siege, w.Logistics, w.Naval} {
		if v <= 0 {
			return false
		}
	}
	return true
}

// WeightMode selects where a battle's weights come from.
type WeightMode string

const (
	// WeightsFixed uses the configured weights as given.
	WeightsFixed WeightMode = "fixed"
	// WeightsRandomized draws fresh weights for every battle.
	WeightsRandomized WeightMode = "randomized"
	// WeightsAuto derives weights from the two sides and the scenario.
	WeightsAuto WeightMode = "auto"
)

// ParseWeightMode maps a name to a mode. Empty selects fixed; unknown names
// return fixed and false.
func ParseWeightMode(s string) (WeightMode, bool) {
	switch m := WeightMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", WeightsFixed:
		return WeightsFixed, true
	case WeightsRandomized, WeightsAuto:
		return m, true
	}
	return WeightsFixed, false
}

// WeightsFor returns the weights one battle is scored with. Randomized mode
// draws eight values from s; the other modes draw nothing.
func (m WeightMode) WeightsFor(fixed Weights, a, b faction.Faction, scenario tables.Scenario, naval bool, s *rng.Stream) Weights {
	switch m {
	case WeightsRandomized:
		return RandomizedWeights(s)
	case WeightsAuto:
		return AutoBalancedWeights(a, b, scenario, naval)
	}
	return fixed
}

// BalancedWeights returns the default weighting.
func BalancedWeights() Weights {
	return Weights{
		Discipline: 1.4, Infantry: 1.3, Armor: 1.1, Logistics: 1.2,
		Ranged: 1.15, Cavalry: 1.1, Siege: 0.9, Naval: 1.0,
	}
}

// RandomizedWeights draws every weight from s in the order discipline,
// infantry, armor, logistics, ranged, cavalry, siege, naval.
func RandomizedWeights(s *rng.Stream) Weights {
	var w Weights
	w.Discipline = s.Uniform(0.5, 2.0)
	w.Infantry = s.Uniform(0.5, 2.0)
	w.Armor = s.Uniform(0.5, 2.0)
	w.Logistics = s.Uniform(0.5, 2.0)
	w.Ranged = s.Uniform(0.5, 2.0)
	w.Cavalry = s.Uniform(0.5, 2.0)
	w.Siege = s.Uniform(0.3, 1.5)
	w.Naval = s.Uniform(0.3, 1.8)
	return w
}

// AutoBalancedWeights derives weights from the average ratings of both sides,
// then scales each weight by the scenario's modifier for that attribute.
func AutoBalancedWeights(a, b faction.Faction, scenario tables.Scenario, naval bool) Weights {
	avg := func(x, y int) float64 { return float64(x+y) / 2 / faction.MaxAttribute }
	navalFactor := 0.1
	if naval {
		navalFactor = 0.6
	}
	aa, ba := a.Attributes, b.Attributes
	w := Weights{
		Discipline: 1 + avg(aa.Discipline, ba.Discipline)*0.5,
		Infantry:   1 + avg(aa.Infantry, ba.Infantry)*0.4,
		Armor:      1 + avg(aa.Armor, ba.Armor)*0.3,
		Logistics:  1 + avg(aa.Logistics, ba.Logistics)*0.3,
		Ranged:     1 + avg(aa.Ranged, ba.Ranged)*0.4,
		Cavalry:    1 + avg(aa.Cavalry, ba.Cavalry)*0.4,
		Siege:      1 + avg(aa.Siege, ba.Siege)*0.2,
		Naval:      1 + avg(aa.Naval, ba.Naval)*navalFactor,
	}
	m := scenario.Modifiers
	w.Ranged *= 1 + m.Ranged
	w.Cavalry *= 1 + m.Cavalry
	w.Infantry *= 1 + m.Infantry
	w.Armor *= 1 + m.Armor
	w.Discipline *= 1 + m.Discipline
	w.Siege *= 1 + m.Siege
	w.Logistics *= 1 + m.Logistics
	w.Naval *= 1 + m.Naval
	return w
}
