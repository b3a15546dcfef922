package narrative

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/battle-engine/pkg/battle"
	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/rng"
	"github.com/jwebster45206/battle-engine/pkg/tables"
)

func sides(t *testing.T) (faction.Faction, faction.Faction) {
	t.Helper()
	reg := faction.Default()
	a, err := reg.Lookup("Romans")
	require.NoError(t, err)
	b, err := reg.Lookup("Samurai")
	require.NoError(t, err)
	return a, b
}

func TestContext(t *testing.T) {
	a, b := sides(t)
	got := Context(a, b, "rolling fields, crisp air", tables.ScenarioOrDefault(tables.ScenarioSiege), rng.New(4))

	flat := strings.ReplaceAll(got, "\n", " ")
	assert.True(t, strings.HasPrefix(flat, "On rolling fields, crisp air, walls, engines, attrition. Romans deploy with "))
	assert.Contains(t, flat, "from the Feudal Japan.")
	assert.True(t, strings.HasSuffix(flat, "then main bodies commit."))
}

func TestDeep(t *testing.T) {
	a, b := sides(t)
	in := DeepInput{
		A: a, B: b,
		Winner:      battle.SideB,
		Attacker:    battle.SideA,
		TerrainDesc: "misty foothills, ground fog and haze",
		Scenario:    tables.ScenarioRiverCrossing,
		Weather:     tables.WeatherOrDefault("fog"),
		Casualties: battle.Casualties{
			A:        battle.Breakdown{Killed: 1234, Wounded: 2345, Captured: 56, Total: 3635},
			B:        battle.Breakdown{Killed: 300, Wounded: 400, Captured: 0, Total: 700},
			Duration: "7-10 hours",
		},
	}

	phases := Phases(in)
	require.Len(t, phases, 4)
	assert.Equal(t, "Opening: light troops screen and probe under ground fog and haze on misty foothills, ground fog and haze.", phases[0])
	assert.True(t, strings.HasPrefix(phases[1], "Disruption:"))
	assert.Equal(t, "Turning point: Samurai turn the tide—discipline and timing crack Romans's line.", phases[2])

	flat := strings.ReplaceAll(Deep(in), "\n", " ")
	assert.True(t, strings.HasPrefix(flat, "Attacker: Romans. Conditions: river crossing, ground fog and haze. Phases: Opening:"))
	assert.Contains(t, flat, "Outcome: Samurai carry the field after 7-10 hours.")
	assert.Contains(t, flat, "Romans: 3,635 (K:1,234 W:2,345 C:56)")
	assert.Contains(t, flat, "Samurai: 700 (K:300 W:400 C:0).")
}

func TestPhases_MainEngagement(t *testing.T) {
	a, b := sides(t)
	phases := Phases(DeepInput{A: a, B: b, Winner: battle.SideA, Scenario: tables.ScenarioSiege, Weather: tables.WeatherOrDefault("clear")})
	assert.True(t, strings.HasPrefix(phases[1], "Main engagement:"))
	assert.Contains(t, phases[2], "Romans gain momentum")
}

func TestBuildPoll(t *testing.T) {
	p := BuildPoll(tables.ScenarioNaval)
	assert.Equal(t, "Rams or missiles at sea?", p.Question)
	assert.Equal(t, [3]string{"Discipline", "Cavalry", "Missiles"}, p.Options)

	p = BuildPoll("unknown")
	assert.Equal(t, "What wins this battle?", p.Question)
	assert.Equal(t, "Archers", p.Options[2])
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "Decide it in the comments.", Caption(12345, 1))
	assert.Equal(t, Caption(0, 0), Caption(2, 2))
	assert.Equal(t, "Lore or logistics—what wins?", Caption(-1, 0))
}
