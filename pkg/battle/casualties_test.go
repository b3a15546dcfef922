package battle

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/rng"
	"github.com/jwebster45206/battle-engine/pkg/tables"
)

func TestEstimateForces_Bounds(t *testing.T) {
	low := faction.New("Low", "", faction.Attributes{Logistics: 0}, nil, nil, nil)
	high := faction.New("High", "", faction.Attributes{Logistics: 5}, nil, nil, nil)
	s := rng.New(2024)

	cases := []struct {
		scenario string
		naval    bool
	}{
		{tables.ScenarioOpenField, false},
		{tables.ScenarioSiege, false},
		{tables.ScenarioNaval, false},
		{tables.ScenarioSiege, true},
	}
	for _, tc := range cases {
		lo, hi := ForceRange(tc.scenario, tc.naval)
		for i := 0; i < 200; i++ {
			a, b := EstimateForces(low, high, tc.scenario, tc.naval, s)
			assert.GreaterOrEqual(t, a, lo)
			assert.LessOrEqual(t, a, hi)
			assert.GreaterOrEqual(t, b, lo)
			assert.LessOrEqual(t, b, hi)
		}
	}
}

func TestForceRange(t *testing.T) {
	lo, hi := ForceRange(tables.ScenarioSiege, true)
	assert.Equal(t, []int{1500, 8000}, []int{lo, hi})
	lo, hi = ForceRange(tables.ScenarioSiege, false)
	assert.Equal(t, []int{8000, 50000}, []int{lo, hi})
	lo, hi = ForceRange("ambush", false)
	assert.Equal(t, []int{6000, 45000}, []int{lo, hi})
}

func TestRates_Bounds(t *testing.T) {
	margins := []float64{0.2, 1, 1.05, 1.3, 2, 5, 5000}
	for _, scen := range append(tables.ScenarioKeys(), "unknown") {
		for _, wk := range tables.WeatherKeys() {
			for _, m := range margins {
				for _, attackerWon := range []bool{true, false} {
					wr, lr := Rates(scen, tables.WeatherOrDefault(wk), m, attackerWon)
					assert.GreaterOrEqual(t, wr, MinWinnerRate)
					assert.LessOrEqual(t, wr, MaxWinnerRate)
					assert.GreaterOrEqual(t, lr, MinLoserRate)
					assert.LessOrEqual(t, lr, MaxLoserRate)
				}
			}
		}
	}
}

func TestRates_Values(t *testing.T) {
	clear := tables.WeatherOrDefault("clear")

	wr, lr := Rates(tables.ScenarioOpenField, clear, 1, true)
	assert.InDelta(t, 0.22*0.35, wr, 1e-9)
	assert.InDelta(t, 0.22*0.8, lr, 1e-9)

	wr, lr = Rates(tables.ScenarioAmbush, clear, 1, true)
	assert.InDelta(t, 0.30*0.35*0.9, wr, 1e-9)
	assert.InDelta(t, 0.30*0.8*1.15, lr, 1e-9)

	wrWon, _ := Rates(tables.ScenarioRiverCrossing, clear, 1, true)
	wrLost, lrLost := Rates(tables.ScenarioRiverCrossing, clear, 1, false)
	assert.InDelta(t, 0.28*0.35*1.05, wrWon, 1e-9)
	assert.InDelta(t, 0.28*0.35*1.2, wrLost, 1e-9)
	assert.InDelta(t, 0.28*0.8*0.95, lrLost, 1e-9)

	wr, lr = Rates(tables.ScenarioOpenField, tables.WeatherOrDefault("fog"), 1, true)
	assert.InDelta(t, 0.22*0.35*0.9, wr, 1e-9)
	assert.InDelta(t, 0.22*0.8*0.9, lr, 1e-9)
}

func TestSplit(t *testing.T) {
	s := rng.New(8)
	for i := 0; i < 200; i++ {
		b := Split(20000, 0.2, s)
		assert.Equal(t, b.Killed+b.Wounded+b.Captured, b.Total)
		assert.GreaterOrEqual(t, b.Captured, 0)
		assert.GreaterOrEqual(t, b.Total, 4000)
		assert.GreaterOrEqual(t, b.Killed, 1200)
		assert.LessOrEqual(t, b.Killed, 1800)
	}
	assert.Equal(t, Breakdown{}, Split(0, 0.5, s))
}

func TestDuration(t *testing.T) {
	s := rng.New(11)
	hours := regexp.MustCompile(`^(\d+)-(\d+) hours$`)
	for _, key := range []string{tables.ScenarioOpenField, tables.ScenarioAmbush, tables.ScenarioNaval, tables.ScenarioRiverCrossing} {
		lo, hi := DurationBounds(key)
		for i := 0; i < 50; i++ {
			d := Duration(key, s)
			m := hours.FindStringSubmatch(d)
			require.Len(t, m, 3, "duration %q", d)
			start, _ := strconv.Atoi(m[1])
			end, _ := strconv.Atoi(m[2])
			assert.GreaterOrEqual(t, start, lo)
			assert.Less(t, start, end)
			assert.LessOrEqual(t, end, hi)
		}
	}
	for i := 0; i < 50; i++ {
		assert.Regexp(t, `^\d+ days$`, Duration(tables.ScenarioSiege, s))
	}
}

func TestEstimateCasualties(t *testing.T) {
	s := rng.New(77)
	c := EstimateCasualties(CasualtyInput{
		Winner:   SideB,
		Attacker: SideA,
		Margin:   1.4,
		Scenario: tables.ScenarioOpenField,
		Weather:  tables.WeatherOrDefault("clear"),
		SizeA:    20000,
		SizeB:    18000,
	}, s)

	assert.Greater(t, c.RateA, c.RateB, "loser bleeds more")
	assert.Greater(t, c.A.Total, 0)
	assert.Greater(t, c.B.Total, 0)
	assert.InDelta(t, c.RateA*100, c.PercentA, 0.05)
	assert.NotEmpty(t, c.Duration)
}
