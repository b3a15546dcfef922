package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioOrDefault(t *testing.T) {
	s := ScenarioOrDefault("siege")
	assert.Equal(t, 0.15, s.Modifiers.Siege)
	assert.ElementsMatch(t, []float64{0.15, 0.1}, s.Modifiers.Values())

	fallback := ScenarioOrDefault("skirmish in space")
	assert.Equal(t, DefaultScenario, fallback.Key)
}

func TestWeatherOrDefault(t *testing.T) {
	assert.Equal(t, -0.1, WeatherOrDefault("fog").Score)
	assert.Equal(t, DefaultWeather, WeatherOrDefault("meteor shower").Key)
	for _, k := range WeatherKeys() {
		_, ok := LookupWeather(k)
		assert.True(t, ok, k)
	}
}

func TestCommander_UnknownKeepsName(t *testing.T) {
	c := Commander("reckless")
	assert.Equal(t, "reckless", c.Key)
	assert.Zero(t, c.Cavalry)
	assert.Zero(t, c.Initiative)
	assert.Equal(t, 0.5, Commander("aggressive").Initiative)
}

func TestTerrainDescriptions(t *testing.T) {
	assert.Len(t, TerrainDescriptions("walls"), 1)
	assert.Equal(t, []string{"lava fields"}, TerrainDescriptions("lava fields"))
	assert.Contains(t, TerrainKeys(), TerrainOpenSea)
}

func TestStyleSet_With(t *testing.T) {
	base := DefaultStyles()
	next := base.With([]StylePack{
		{Name: "Noir", Add: []string{"black and white"}, Stylize: []int{100}},
		{Name: "Empty"},
		{Name: "Cinematic", Add: []string{"anamorphic flare"}, Stylize: []int{500}},
	}, map[string]Preset{"Vikings": {Palette: "cold blue", Camera: "prow view"}})

	assert.Equal(t, append(base.Names(), "Noir"), next.Names())
	p, ok := next.Pack("Cinematic")
	require.True(t, ok)
	assert.Equal(t, []int{500}, p.Stylize)
	_, ok = next.Pack("Empty")
	assert.False(t, ok)
	_, ok = next.Preset("Vikings")
	assert.True(t, ok)

	orig, _ := base.Pack("Cinematic")
	assert.Equal(t, []int{250, 300, 350}, orig.Stylize)
}

func TestSelectors(t *testing.T) {
	assert.True(t, IsRandomSelector("Randomized"))
	assert.True(t, IsRotateSelector("ROTATE"))
	assert.False(t, IsRandomSelector("Cinematic"))
}
