package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/jwebster45206/battle-engine/pkg/tournament"
)

func TestRenderLeaderboard(t *testing.T) {
	out := renderLeaderboard(tournament.Result{Standings: []tournament.Standing{
		{Faction: "Romans", Elo: 1523.4},
		{Faction: "Samurai", Elo: 1476.6},
	}})
	assert.Contains(t, out, "Leaderboard")
	assert.Contains(t, out, "Romans")
	assert.Contains(t, out, "1523.4")
	assert.Contains(t, out, "1476.6")
}

func TestRenderRecord(t *testing.T) {
	out := renderRecord(generator.BattleRecord{Day: "Day 1", Matchup: "Romans vs Samurai", Winner: "Romans", Seed: 5})
	assert.Contains(t, out, "Day 1: Romans vs Samurai")
	assert.Contains(t, out, "Romans")
}

func TestLoadTemplate(t *testing.T) {
	matchups, templatePath = nil, ""
	rows, err := loadTemplate()
	require.NoError(t, err)
	assert.Equal(t, []string{"Romans vs. Samurai"}, rows)

	matchups = []string{"Mongols vs. Vikings"}
	defer func() { matchups = nil }()
	rows, err = loadTemplate()
	require.NoError(t, err)
	assert.Equal(t, []string{"Mongols vs. Vikings"}, rows)
}
