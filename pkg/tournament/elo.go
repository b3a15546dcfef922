// Package tournament runs round-robin brackets and keeps Elo ratings.
package tournament

import (
	"math"
	"sort"

	"github.com/jwebster45206/battle-engine/pkg/battle"
	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/rng"
	"github.com/jwebster45206/battle-engine/pkg/tables"
)

// Elo parameters.
const (
	Baseline = 1500.0
	K        = 24.0
)

// ExpectedScore is the probability that a player rated ra beats one rated rb.
func ExpectedScore(ra, rb float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (rb-ra)/400))
}

// Update returns both new ratings after A scored sa (1 win, 0 loss).
func Update(ra, rb, sa, k float64) (float64, float64) {
	ea := ExpectedScore(ra, rb)
	return ra + k*(sa-ea), rb + k*((1-sa)-(1-ea))
}

// Rules are the shared conditions of every bracket match.
type Rules struct {
	Scenario tables.Scenario
	Weather  tables.Weather
	Weights  battle.Weights
	// WeightMode picks per-match weights; randomized draws after the terrain key.
	WeightMode battle.WeightMode
	CommanderA tables.CommanderTrait
	CommanderB tables.CommanderTrait
	Naval      bool
}

// Match is one played pairing.
type Match struct {
	A       string  `json:"a"`
	B       string  `json:"b"`
	Winner  string  `json:"winner"`
	Terrain string  `json:"terrain"`
	ScoreA  float64 `json:"score_a"`
	ScoreB  float64 `json:"score_b"`
}

// Standing is one leaderboard row.
type Standing struct {
	Faction string  `json:"faction"`
	Elo     float64 `json:"elo"`
}

// Result is the leaderboard (highest first) and the match log in play order.
type Result struct {
	Standings []Standing `json:"standings"`
	Matches   []Match    `json:"matches"`
}

// RunRoundRobin plays every unordered pair once, i<j in input order, after a
// single reseed. Each match draws a terrain key then resolves. Names must be
// unique.
func RunRoundRobin(factions []faction.Faction, seed int64, rules Rules) Result {
	s := rng.New(seed)
	ratings := make([]float64, len(factions))
	for i := range ratings {
		ratings[i] = Baseline
	}

	res := Result{Matches: make([]Match, 0, len(factions)*(len(factions)-1)/2)}
	for i := 0; i < len(factions); i++ {
		for j := i + 1; j < len(factions); j++ {
			a, b := factions[i], factions[j]
			terrain := battle.PickTerrainKey(a, b, rules.Naval, s)
			m := battle.Matchup{
				A: a, B: b,
				TerrainKey: terrain,
				Scenario:   rules.Scenario,
				Weather:    rules.Weather,
				Weights:    rules.WeightMode.WeightsFor(rules.Weights, a, b, rules.Scenario, rules.Naval, s),
				CommanderA: rules.CommanderA,
				CommanderB: rules.CommanderB,
				Naval:      rules.Naval,
			}
			out := battle.Resolve(m, s)

			sa := 0.0
			if out.Winner == battle.SideA {
				sa = 1.0
			}
			ratings[i], ratings[j] = Update(ratings[i], ratings[j], sa, K)
			res.Matches = append(res.Matches, Match{
				A: a.Name, B: b.Name, Winner: out.WinnerName, Terrain: m.TerrainKey,
				ScoreA: out.ScoreA, ScoreB: out.ScoreB,
			})
		}
	}

	res.Standings = make([]Standing, len(factions))
	for i, f := range factions {
		res.Standings[i] = Standing{Faction: f.Name, Elo: ratings[i]}
	}
	sort.SliceStable(res.Standings, func(x, y int) bool {
		return res.Standings[x].Elo > res.Standings[y].Elo
	})
	return res
}
