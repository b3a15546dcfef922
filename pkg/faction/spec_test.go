package faction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSpecs_List(t *testing.T) {
	data := []byte(`[
		{"name": "Dragon Empire", "era": "Custom", "ranged": 3, "cavalry": 3, "infantry": 3, "armor": 3,
		 "discipline": 9, "siege": 2, "logistics": 3, "naval": 1, "motifs": ["dragon banners"]},
		{"name": "Broken", "ranged": "lots"},
		{"name": "Partial", "ranged": 1, "cavalry": 1},
		"not an object"
	]`)

	factions, rejected, err := DecodeSpecs(data)
	require.NoError(t, err)
	require.Len(t, factions, 1)
	assert.Len(t, rejected, 3)

	f := factions[0]
	assert.Equal(t, "Dragon Empire", f.Name)
	assert.Equal(t, 5, f.Attributes.Discipline)
	assert.Equal(t, []string{"dragon banners"}, f.Motifs)
	assert.Equal(t, []string{DefaultTerrain}, f.TerrainPref)
}

func TestDecodeSpecs_MappingYAML(t *testing.T) {
	data := []byte(`
Sea Raiders:
  era: Norse
  ranged: 2
  cavalry: 0
  infantry: 4
  armor: 2
  discipline: 3
  siege: 1
  logistics: 2
  naval: 5
  terrain_pref: [coast]
`)
	factions, rejected, err := DecodeSpecs(data)
	require.NoError(t, err)
	assert.Empty(t, rejected)
	require.Len(t, factions, 1)
	assert.Equal(t, "Sea Raiders", factions[0].Name)
	assert.Equal(t, []string{"coast"}, factions[0].TerrainPref)
}

func TestDecodeSpecs_Invalid(t *testing.T) {
	_, _, err := DecodeSpecs([]byte(`{{{`))
	assert.Error(t, err)

	_, _, err = DecodeSpecs([]byte(`42`))
	assert.Error(t, err)

	factions, rejected, err := DecodeSpecs([]byte(``))
	assert.NoError(t, err)
	assert.Empty(t, factions)
	assert.Empty(t, rejected)
}

func TestSpecFrom_RoundTrip(t *testing.T) {
	romans, _ := Default().Get("Romans")
	back, err := SpecFrom(romans).Faction()
	require.NoError(t, err)
	assert.Equal(t, romans, back)
}
