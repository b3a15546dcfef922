package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/jwebster45206/battle-engine/pkg/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadOverrides_EmptyDir(t *testing.T) {
	o, err := LoadOverrides(t.TempDir(), testLogger())
	require.NoError(t, err)
	assert.Empty(t, o.Factions)
	assert.Empty(t, o.Files)
	assert.Equal(t, len(faction.Catalog()), o.Registry().Len())
}

func TestLoadOverrides_AllFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "user_factions.json", `[
		{"name": "Romans", "ranged": 9, "cavalry": 1, "infantry": 5, "armor": 5, "discipline": 5, "siege": 5, "logistics": 5, "naval": 2},
		{"name": "Atlanteans", "era": "Myth", "ranged": 3, "cavalry": 1, "infantry": 3, "armor": 3, "discipline": 3, "siege": 1, "logistics": 2, "naval": 5},
		{"name": "Broken", "ranged": 3}
	]`)
	writeFile(t, dir, "user_style_packs.yaml", `
Noir:
  add: ["black and white", "hard shadows"]
  s: [150, 200]
`)
	writeFile(t, dir, "user_presets.yml", `
Atlanteans:
  palette: sea green and pearl
  camera: underwater wide
`)

	o, err := LoadOverrides(dir, testLogger())
	require.NoError(t, err)

	require.Len(t, o.Factions, 2)
	require.Len(t, o.Rejected, 1)
	assert.Equal(t, 5, o.Factions[0].Attributes.Ranged, "clamped")

	reg := o.Registry()
	f, err := reg.Lookup("Atlanteans")
	require.NoError(t, err)
	assert.Equal(t, "Myth", f.Era)
	romans, err := reg.Lookup("Romans")
	require.NoError(t, err)
	assert.Equal(t, 5, romans.Attributes.Ranged)

	styles := o.Styles()
	pack, ok := styles.Pack("Noir")
	require.True(t, ok)
	assert.Equal(t, []int{150, 200}, pack.Stylize)
	preset, ok := styles.Preset("Atlanteans")
	require.True(t, ok)
	assert.Equal(t, "underwater wide", preset.Camera)

	assert.Contains(t, o.Files, "user_factions.json")
	assert.Contains(t, o.Files, "user_style_packs.yaml")
	assert.Contains(t, o.Files, "user_presets.yml")
}

func TestLoadOverrides_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "user_presets.json", `{not valid`)
	_, err := LoadOverrides(dir, testLogger())
	assert.Error(t, err)
}

func TestDecodeStylePacks_List(t *testing.T) {
	packs, err := DecodeStylePacks([]byte(`[{"name": "Grim", "add": ["ash"], "s": [100]}]`))
	require.NoError(t, err)
	require.Len(t, packs, 1)
	assert.Equal(t, "Grim", packs[0].Name)
}

func setupTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache, err := NewRedisCache("redis://"+mr.Addr(), time.Hour, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestRedisCache_PutGet(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()
	require.NoError(t, cache.Ping(ctx))

	reg := faction.Default()
	romans, _ := reg.Get("Romans")
	samurai, _ := reg.Get("Samurai")
	key := RecordKey{A: romans, B: samurai, Seed: 12345, Config: generator.DefaultConfig()}
	got, err := cache.GetRecord(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	rec := generator.BattleRecord{Day: "Day 1", Matchup: "Romans vs Samurai", Seed: 12345, Winner: "Romans"}
	require.NoError(t, cache.PutRecord(ctx, key, rec))
	assert.True(t, mr.Exists(key.String()))
	assert.Equal(t, time.Hour, mr.TTL(key.String()))

	got, err = cache.GetRecord(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.Winner, got.Winner)
}

func TestRecordKey_DependsOnConfig(t *testing.T) {
	reg := faction.Default()
	romans, _ := reg.Get("Romans")
	samurai, _ := reg.Get("Samurai")
	base := RecordKey{A: romans, B: samurai, Seed: 1, Config: generator.DefaultConfig()}
	other := base
	other.Config.Weather = "fog"
	assert.NotEqual(t, base.String(), other.String())
	assert.Equal(t, base.String(), base.String())
}

func TestRecordKey_DependsOnFactionRatings(t *testing.T) {
	reg := faction.Default()
	romans, _ := reg.Get("Romans")
	samurai, _ := reg.Get("Samurai")
	base := RecordKey{A: romans, B: samurai, Seed: 1, Config: generator.DefaultConfig()}

	attrs := romans.Attributes
	attrs.Cavalry = 5
	overridden := reg.With(faction.New("Romans", romans.Era, attrs, romans.TerrainPref, romans.Palettes, romans.Motifs))
	newRomans, _ := overridden.Get("Romans")

	changed := base
	changed.A = newRomans
	assert.NotEqual(t, base.String(), changed.String(), "same name, new ratings")
}

func TestNewRedisCache_BareAddress(t *testing.T) {
	mr := miniredis.RunT(t)
	cache, err := NewRedisCache(mr.Addr(), 0, testLogger())
	require.NoError(t, err)
	defer cache.Close()
	assert.NoError(t, cache.Ping(context.Background()))
}

func TestArchive_Schedules(t *testing.T) {
	a, err := OpenArchive(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	defer a.Close()
	ctx := context.Background()

	records := []generator.BattleRecord{
		{Day: "Day 1", Matchup: "Romans vs Samurai", Seed: 7},
		{Day: "Day 2", Matchup: "Mongols vs Vikings", Seed: 8},
	}
	require.NoError(t, a.SaveSchedule(ctx, "run-1", 7, records))

	run, err := a.LoadSchedule(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), run.Seed)
	assert.Equal(t, 2, run.Days)
	require.Len(t, run.Records, 2)
	assert.Equal(t, "Mongols vs Vikings", run.Records[1].Matchup)

	runs, err := a.ListSchedules(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].ID)
	assert.Nil(t, runs[0].Records)

	_, err = a.LoadSchedule(ctx, "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestArchive_Tournaments(t *testing.T) {
	a, err := OpenArchive(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	defer a.Close()
	ctx := context.Background()

	result := tournament.Result{
		Standings: []tournament.Standing{{Faction: "Romans", Elo: 1512}, {Faction: "Samurai", Elo: 1488}},
		Matches:   []tournament.Match{{A: "Romans", B: "Samurai", Winner: "Romans", Terrain: "plains"}},
	}
	require.NoError(t, a.SaveTournament(ctx, "t-1", 99, result))

	run, err := a.LoadTournament(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, result, run.Result)

	_, err = a.LoadTournament(ctx, "t-2")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRedisCache_WaitForConnection(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()
	require.NoError(t, cache.WaitForConnection(ctx, 3, time.Millisecond))

	mr.Close()
	err := cache.WaitForConnection(ctx, 2, time.Millisecond)
	assert.Error(t, err)
}
