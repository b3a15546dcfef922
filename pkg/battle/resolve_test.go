package battle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/rng"
	"github.com/jwebster45206/battle-engine/pkg/tables"
)

func romansVsSamurai(t *testing.T) Matchup {
	t.Helper()
	reg := faction.Default()
	a, err := reg.Lookup("Romans")
	require.NoError(t, err)
	b, err := reg.Lookup("Samurai")
	require.NoError(t, err)
	return Matchup{
		A: a, B: b,
		TerrainKey: tables.TerrainPlains,
		Scenario:   tables.ScenarioOrDefault(tables.ScenarioOpenField),
		Weather:    tables.WeatherOrDefault(tables.DefaultWeather),
		Weights:    BalancedWeights(),
		CommanderA: tables.Commander("aggressive"),
		CommanderB: tables.Commander("defensive"),
	}
}

func mirror(name string) faction.Faction {
	return faction.New(name, "Test", faction.Attributes{
		Ranged: 3, Cavalry: 3, Infantry: 3, Armor: 3, Discipline: 3, Siege: 3, Logistics: 3, Naval: 3,
	}, []string{"hills"}, []string{"grey"}, []string{"shields"})
}

func TestScore_Monotonic(t *testing.T) {
	m := romansVsSamurai(t)
	base := Score(m, SideA)

	bumps := []func(*Weights){
		func(w *Weights) { w.Ranged += 0.5 },
		func(w *Weights) { w.Cavalry += 0.5 },
		func(w *Weights) { w.Infantry += 0.5 },
		func(w *Weights) { w.Armor += 0.5 },
		func(w *Weights) { w.Discipline += 0.5 },
		func(w *Weights) { w.Siege += 0.5 },
		func(w *Weights) { w.Logistics += 0.5 },
		func(w *Weights) { w.Naval += 0.5 },
	}
	for i, bump := range bumps {
		next := m
		bump(&next.Weights)
		assert.Greater(t, Score(next, SideA), base, "weight %d", i)
	}
}

func TestScore_Modifiers(t *testing.T) {
	m := romansVsSamurai(t)
	m.A, m.B = mirror("North"), mirror("South")
	m.CommanderA, m.CommanderB = tables.Commander("none"), tables.Commander("none")
	m.Scenario = tables.Scenario{Key: "flat"}
	m.TerrainKey = "steppe"
	plain := Score(m, SideA)

	t.Run("preferred terrain", func(t *testing.T) {
		n := m
		n.TerrainKey = "hills"
		assert.InDelta(t, plain*1.05, Score(n, SideA), 1e-9)
	})

	t.Run("weather", func(t *testing.T) {
		n := m
		n.Weather = tables.WeatherOrDefault("fog")
		assert.InDelta(t, plain*0.9, Score(n, SideA), 1e-9)
	})

	t.Run("scenario compounds", func(t *testing.T) {
		n := m
		n.Scenario = tables.ScenarioOrDefault(tables.ScenarioSiege)
		assert.InDelta(t, plain*1.15*1.1, Score(n, SideA), 1e-9)
	})

	t.Run("naval scaled down off sea", func(t *testing.T) {
		on := m
		on.Naval = true
		assert.InDelta(t, m.Weights.Naval*3*0.8, Score(on, SideA)-plain, 1e-9)
	})

	t.Run("commander bonus skips infantry", func(t *testing.T) {
		n := m
		n.CommanderA = tables.CommanderTrait{Key: "x", Cavalry: 0.1}
		assert.InDelta(t, plain+m.Weights.Cavalry*0.5, Score(n, SideA), 1e-9)
	})
}

func TestDecide_TieGoesToA(t *testing.T) {
	assert.Equal(t, SideA, Decide(10, 10))
	assert.Equal(t, SideB, Decide(9.99, 10))
}

func TestResolve_TieWithZeroJitter(t *testing.T) {
	m := romansVsSamurai(t)
	m.A, m.B = mirror("North"), mirror("South")
	m.CommanderA, m.CommanderB = tables.Commander("cunning"), tables.Commander("cunning")

	out := resolve(m, 0, 0, rng.New(1))
	assert.Equal(t, SideA, out.Winner)
	assert.Equal(t, "North", out.WinnerName)
	assert.Equal(t, out.ScoreA, out.ScoreB)
	assert.InDelta(t, 1.0, out.Margin(), 1e-9)
	assert.Contains(t, out.Rationale, "commander edge: cunning")
}

func TestResolve_Rationale(t *testing.T) {
	m := romansVsSamurai(t)
	out := Resolve(m, rng.New(12345))

	assert.True(t, strings.HasPrefix(out.Rationale, out.WinnerName+" win: "))
	assert.Contains(t, out.Rationale, "commander edge:")
	assert.Contains(t, out.Rationale, "Margin ~")
	assert.Contains(t, out.Rationale, "Visual: emphasize")
	for _, line := range strings.Split(out.Rationale, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 110)
	}
	assert.GreaterOrEqual(t, out.Margin(), 1.0)
	assert.Equal(t, out.WinnerScore() >= out.LoserScore(), true)
}

func TestResolve_Deterministic(t *testing.T) {
	m := romansVsSamurai(t)
	assert.Equal(t, Resolve(m, rng.New(99)), Resolve(m, rng.New(99)))
}

func TestResolve_ScoresReportedPerSide(t *testing.T) {
	m := romansVsSamurai(t)
	m.B = mirror("Weaklings")
	m.B.Attributes = faction.Attributes{}
	m.CommanderB = tables.Commander("none")

	out := resolve(m, 0, 0, rng.New(3))
	assert.Equal(t, SideA, out.Winner)
	assert.InDelta(t, Score(m, SideA), out.ScoreA, 1e-9)
	assert.InDelta(t, 0, out.ScoreB, 1e-9)
	assert.Equal(t, 1.0, out.CasualtyMargin())
}

func TestReasons(t *testing.T) {
	m := romansVsSamurai(t)
	m.A = faction.New("Strong", "Test", faction.Attributes{Ranged: 5, Cavalry: 5, Discipline: 5, Armor: 5, Logistics: 5, Siege: 5, Naval: 5},
		[]string{"walls"}, nil, nil)
	m.B = faction.New("Weak", "Test", faction.Attributes{}, []string{"hills"}, nil, nil)
	m.Scenario = tables.ScenarioOrDefault(tables.ScenarioSiege)
	m.TerrainKey = "walls"
	m.Naval = true

	assert.Equal(t, []string{
		"missile superiority set tempo",
		"mobility took the flanks",
		"cohesion held under pressure",
		"protection blunted shock",
		"supply depth sustained lines",
		"engineers dictated pace",
		"terrain familiarity mattered",
		"seamanship and ramming skill dominated",
		"commander edge: aggressive",
	}, Reasons(m, SideA))

	assert.Equal(t, []string{"commander edge: defensive"}, Reasons(m, SideB))
}

func TestMargin(t *testing.T) {
	assert.InDelta(t, 2.0, Margin(20, 10), 1e-9)
	assert.InDelta(t, 5000.0, Margin(5, 0), 1e-6)
	assert.InDelta(t, 5000.0, Margin(5, -3), 1e-6)
}

func TestWeights(t *testing.T) {
	assert.True(t, BalancedWeights().Valid())
	assert.False(t, Weights{}.Valid())

	s := rng.New(5)
	for i := 0; i < 50; i++ {
		w := RandomizedWeights(s)
		assert.True(t, w.Valid())
		assert.GreaterOrEqual(t, w.Discipline, 0.5)
		assert.Less(t, w.Discipline, 2.0)
		assert.GreaterOrEqual(t, w.Siege, 0.3)
		assert.Less(t, w.Naval, 1.8)
	}

	m := romansVsSamurai(t)
	auto := AutoBalancedWeights(m.A, m.B, tables.ScenarioOrDefault(tables.ScenarioSiege), false)
	assert.True(t, auto.Valid())
	avgSiege := float64(m.A.Attributes.Siege+m.B.Attributes.Siege) / 2 / 5
	assert.InDelta(t, (1+avgSiege*0.2)*1.15, auto.Siege, 1e-9)
}

func TestParseWeightMode(t *testing.T) {
	tests := []struct {
		in   string
		want WeightMode
		ok   bool
	}{
		{"", WeightsFixed, true},
		{"fixed", WeightsFixed, true},
		{" Randomized ", WeightsRandomized, true},
		{"AUTO", WeightsAuto, true},
		{"chaotic", WeightsFixed, false},
	}
	for _, tt := range tests {
		got, ok := ParseWeightMode(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestWeightMode_WeightsFor(t *testing.T) {
	m := romansVsSamurai(t)
	fixed := BalancedWeights()

	t.Run("fixed draws nothing", func(t *testing.T) {
		s := rng.New(9)
		assert.Equal(t, fixed, WeightsFixed.WeightsFor(fixed, m.A, m.B, m.Scenario, false, s))
		assert.Equal(t, rng.New(9).Float64(), s.Float64())
	})

	t.Run("randomized draws from the stream", func(t *testing.T) {
		got := WeightsRandomized.WeightsFor(fixed, m.A, m.B, m.Scenario, false, rng.New(9))
		assert.Equal(t, RandomizedWeights(rng.New(9)), got)
		assert.NotEqual(t, fixed, got)
	})

	t.Run("auto follows the sides", func(t *testing.T) {
		s := rng.New(9)
		got := WeightsAuto.WeightsFor(fixed, m.A, m.B, m.Scenario, true, s)
		assert.Equal(t, AutoBalancedWeights(m.A, m.B, m.Scenario, true), got)
		assert.Equal(t, rng.New(9).Float64(), s.Float64())
	})

	t.Run("zero value is fixed", func(t *testing.T) {
		var mode WeightMode
		assert.Equal(t, fixed, mode.WeightsFor(fixed, m.A, m.B, m.Scenario, false, rng.New(1)))
	})
}
