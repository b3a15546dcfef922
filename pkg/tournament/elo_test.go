package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/battle-engine/pkg/battle"
	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/tables"
)

func defaultRules() Rules {
	return Rules{
		Scenario:   tables.ScenarioOrDefault(tables.ScenarioOpenField),
		Weather:    tables.WeatherOrDefault(tables.DefaultWeather),
		Weights:    battle.BalancedWeights(),
		CommanderA: tables.Commander("aggressive"),
		CommanderB: tables.Commander("defensive"),
	}
}

func pick(t *testing.T, names ...string) []faction.Faction {
	t.Helper()
	reg := faction.Default()
	out := make([]faction.Faction, 0, len(names))
	for _, n := range names {
		f, err := reg.Lookup(n)
		require.NoError(t, err)
		out = append(out, f)
	}
	return out
}

func TestExpectedScore(t *testing.T) {
	assert.InDelta(t, 0.5, ExpectedScore(1500, 1500), 1e-12)
	assert.InDelta(t, 1.0, ExpectedScore(1620, 1480)+ExpectedScore(1480, 1620), 1e-12)
	assert.Greater(t, ExpectedScore(1700, 1500), 0.5)
}

func TestUpdate(t *testing.T) {
	ra, rb := Update(1500, 1500, 1, K)
	assert.InDelta(t, 1512, ra, 1e-9)
	assert.InDelta(t, 1488, rb, 1e-9)
	assert.InDelta(t, 3000, ra+rb, 1e-9, "rating is conserved")

	ra2, rb2 := Update(ra, rb, 0, K)
	assert.InDelta(t, 1.0, ExpectedScore(ra2, rb2)+ExpectedScore(rb2, ra2), 1e-12)
}

func TestRunRoundRobin_Completeness(t *testing.T) {
	fs := pick(t, "Romans", "Samurai", "Mongols", "Vikings", "Ottomans")
	res := RunRoundRobin(fs, 7, defaultRules())

	require.Len(t, res.Matches, 5*4/2)
	seen := map[[2]string]bool{}
	for _, m := range res.Matches {
		key := [2]string{m.A, m.B}
		assert.False(t, seen[key], "pair played twice: %v", key)
		seen[key] = true
		assert.Contains(t, []string{m.A, m.B}, m.Winner)
	}
	assert.Equal(t, "Romans", res.Matches[0].A)
	assert.Equal(t, "Samurai", res.Matches[0].B)

	require.Len(t, res.Standings, 5)
	total := 0.0
	for i, st := range res.Standings {
		total += st.Elo
		if i > 0 {
			assert.GreaterOrEqual(t, res.Standings[i-1].Elo, st.Elo)
		}
	}
	assert.InDelta(t, 5*Baseline, total, 1e-6)
}

func TestRunRoundRobin_Deterministic(t *testing.T) {
	fs := pick(t, "Romans", "Samurai", "Mongols")
	assert.Equal(t, RunRoundRobin(fs, 42, defaultRules()), RunRoundRobin(fs, 42, defaultRules()))
}

func TestRunRoundRobin_Degenerate(t *testing.T) {
	res := RunRoundRobin(nil, 1, defaultRules())
	assert.Empty(t, res.Matches)
	assert.Empty(t, res.Standings)

	one := RunRoundRobin(pick(t, "Romans"), 1, defaultRules())
	assert.Empty(t, one.Matches)
	assert.Equal(t, []Standing{{Faction: "Romans", Elo: Baseline}}, one.Standings)
}

func TestRunRoundRobin_WeightModes(t *testing.T) {
	fs := pick(t, "Romans", "Samurai", "Mongols", "Vikings")

	fixed := RunRoundRobin(fs, 42, defaultRules())
	for _, mode := range []battle.WeightMode{battle.WeightsRandomized, battle.WeightsAuto} {
		rules := defaultRules()
		rules.WeightMode = mode
		res := RunRoundRobin(fs, 42, rules)
		require.Len(t, res.Matches, 6, mode)
		assert.Equal(t, res, RunRoundRobin(fs, 42, rules), "deterministic under %s", mode)
		assert.NotEqual(t, fixed.Matches[0].ScoreA, res.Matches[0].ScoreA, "weights change scores under %s", mode)
	}
}
