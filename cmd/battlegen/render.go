package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/jwebster45206/battle-engine/pkg/tournament"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")) // pink

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	headerCell = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).PaddingRight(2)
	cell       = lipgloss.NewStyle().PaddingRight(2)
)

func renderRecord(r generator.BattleRecord) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s: %s", r.Day, r.Matchup)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  seed %d", r.Seed)))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(labelStyle.Render(label+": ") + value + "\n")
	}
	field("Terrain", r.TerrainDesc)
	field("Scenario", r.Scenario+", "+r.Weather)
	field("Winner", winnerStyle.Render(r.Winner))
	field("Why", r.Rationale)
	field("Attacker", r.Attacker)
	field("Duration", r.Duration)
	field("Casualties", fmt.Sprintf("%s %d (%g%%), %s %d (%g%%)",
		r.SideA, r.CasualtiesA.Total, r.RateA, r.SideB, r.CasualtiesB.Total, r.RateB))
	field("Hook", r.LoreHook)
	field("Caption", r.Caption)
	b.WriteString("\n" + dimStyle.Render(r.PromptWide))
	return cardStyle.Render(b.String())
}

// renderTable lays rows out in columns sized to their widest cell.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(style lipgloss.Style, cells []string) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = style.Width(widths[i] + style.GetPaddingRight()).Render(c)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	out := []string{line(headerCell, header)}
	for _, row := range rows {
		out = append(out, line(cell, row))
	}
	return strings.Join(out, "\n")
}

func renderLeaderboard(res tournament.Result) string {
	rows := make([][]string, len(res.Standings))
	for i, s := range res.Standings {
		rows[i] = []string{fmt.Sprintf("%d", i+1), s.Faction, fmt.Sprintf("%.1f", s.Elo)}
	}
	return titleStyle.Render("Leaderboard") + "\n" + renderTable([]string{"#", "Faction", "Elo"}, rows)
}
