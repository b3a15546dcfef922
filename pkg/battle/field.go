package battle

import (
	"math"

	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/rng"
	"github.com/jwebster45206/battle-engine/pkg/tables"
)

// attackerThreshold is the initiative gap below which the attacker is a coin flip.
const attackerThreshold = 0.5

// PickTerrainKey returns open sea in naval mode; otherwise it draws from both
// sides' preferred terrain plus plains.
func PickTerrainKey(a, b faction.Faction, naval bool, s *rng.Stream) string {
	if naval {
		return tables.TerrainOpenSea
	}
	pool := make([]string, 0, len(a.TerrainPref)+len(b.TerrainPref)+1)
	pool = append(pool, a.TerrainPref...)
	pool = append(pool, b.TerrainPref...)
	pool = append(pool, tables.TerrainPlains)
	return rng.Choice(s, pool)
}

// PickTerrainDescription draws a description for key and appends the weather
// visibility suffix.
func PickTerrainDescription(key string, w tables.Weather, s *rng.Stream) string {
	return rng.Choice(s, tables.TerrainDescriptions(key)) + w.Visibility
}

// Initiative is the attacking tendency of a side: cavalry, ranged and
// logistics ratings plus the commander's initiative.
func Initiative(f faction.Faction, c tables.CommanderTrait) float64 {
	a := f.Attributes
	return float64(a.Cavalry+a.Ranged+a.Logistics) + c.Initiative
}

// ChooseAttacker returns the side with more initiative. It draws from s only
// when the two are within half a point.
func ChooseAttacker(a, b faction.Faction, cmdA, cmdB tables.CommanderTrait, s *rng.Stream) Side {
	sa, sb := Initiative(a, cmdA), Initiative(b, cmdB)
	if math.Abs(sa-sb) < attackerThreshold {
		return rng.Choice(s, []Side{SideA, SideB})
	}
	if sa > sb {
		return SideA
	}
	return SideB
}
