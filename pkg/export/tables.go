// Package export renders battle records into the files of a content bundle:
// CSV sheets, JSON, Markdown cards, a Midjourney queue and the ZIP that
// carries them.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/jwebster45206/battle-engine/pkg/prompts"
)

// Cleaned returns copies of records with both prompts autocleaned against
// their matchup.
func Cleaned(records []generator.BattleRecord) []generator.BattleRecord {
	out := make([]generator.BattleRecord, len(records))
	for i, r := range records {
		r.PromptWide = prompts.Autoclean(r.PromptWide, r.Matchup)
		r.PromptTall = prompts.Autoclean(r.PromptTall, r.Matchup)
		r.VariantHooks = append([]string(nil), r.VariantHooks...)
		r.VariantVOs = append([]string(nil), r.VariantVOs...)
		out[i] = r
	}
	return out
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func itoa(n int) string { return strconv.Itoa(n) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

var battleHeader = []string{
	"Day", "Matchup", "MidJourney 16:9", "MidJourney 9:16", "Context", "Analysis", "Who Won?", "Why They Won",
	"Attacker", "Duration", "Casualties A", "Casualties B", "Casualty Rate A (%)", "Casualty Rate B (%)",
	"Lore Hook", "Tactical Beat", "Fan Prompt", "VO Script", "Tone", "Quote", "Style Used",
	"Hook A", "Hook B", "Hook C", "VO A", "VO B", "VO C", "Alt Winner", "Alt VO",
	"Poll Q", "Poll Opt 1", "Poll Opt 2", "Poll Opt 3",
	"Killed A", "Wounded A", "Captured A", "Killed B", "Wounded B", "Captured B",
	"Caption", "Seed", "Score A", "Score B",
}

// BattlesCSV renders one row per record.
func BattlesCSV(records []generator.BattleRecord) ([]byte, error) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		hookA, voA := r.Variant(0)
		hookB, voB := r.Variant(1)
		hookC, voC := r.Variant(2)
		rows = append(rows, []string{
			r.Day, r.Matchup, r.PromptWide, r.PromptTall, r.Context, r.Analysis, r.Winner, r.Rationale,
			r.Attacker, r.Duration, itoa(r.CasualtiesA.Total), itoa(r.CasualtiesB.Total), ftoa(r.RateA), ftoa(r.RateB),
			r.LoreHook, r.TacticalBeat, r.FanPrompt, r.VOScript, r.Tone, r.Quote, r.StyleUsed,
			hookA, hookB, hookC, voA, voB, voC, r.AltWinner, r.AltVO,
			r.PollQuestion, r.PollOptions[0], r.PollOptions[1], r.PollOptions[2],
			itoa(r.CasualtiesA.Killed), itoa(r.CasualtiesA.Wounded), itoa(r.CasualtiesA.Captured),
			itoa(r.CasualtiesB.Killed), itoa(r.CasualtiesB.Wounded), itoa(r.CasualtiesB.Captured),
			r.Caption, strconv.FormatInt(r.Seed, 10), ftoa(r.ScoreA), ftoa(r.ScoreB),
		})
	}
	return writeCSV(battleHeader, rows)
}

// BattlesJSON renders records as an indented JSON array.
func BattlesJSON(records []generator.BattleRecord) ([]byte, error) {
	if records == nil {
		records = []generator.BattleRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	return data, nil
}

// PromptRow is one line of the prompt sheet.
type PromptRow struct {
	Day    string
	Aspect string
	Prompt string
	Seed   int64
}

// PromptSheet returns two autocleaned rows per record, wide then tall.
func PromptSheet(records []generator.BattleRecord) []PromptRow {
	rows := make([]PromptRow, 0, 2*len(records))
	for _, r := range records {
		rows = append(rows,
			PromptRow{Day: r.Day, Aspect: prompts.AspectWide, Prompt: prompts.Autoclean(r.PromptWide, r.Matchup), Seed: r.Seed},
			PromptRow{Day: r.Day, Aspect: prompts.AspectTall, Prompt: prompts.Autoclean(r.PromptTall, r.Matchup), Seed: r.Seed},
		)
	}
	return rows
}

// PromptSheetCSV renders PromptSheet.
func PromptSheetCSV(records []generator.BattleRecord) ([]byte, error) {
	sheet := PromptSheet(records)
	rows := make([][]string, 0, len(sheet))
	for _, p := range sheet {
		rows = append(rows, []string{p.Day, p.Aspect, p.Prompt, strconv.FormatInt(p.Seed, 10)})
	}
	return writeCSV([]string{"Day", "Aspect", "Prompt", "Seed"}, rows)
}

// CaptionsCSV renders the lore text per record.
func CaptionsCSV(records []generator.BattleRecord) ([]byte, error) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Day, r.Matchup, r.LoreHook, r.TacticalBeat, r.FanPrompt, r.VOScript, r.Quote})
	}
	return writeCSV([]string{"Day", "Matchup", "Hook", "Tactical", "Fan", "VO", "Quote"}, rows)
}

// VariantsCSV renders the first three lore variants and the alternate timeline.
func VariantsCSV(records []generator.BattleRecord) ([]byte, error) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		hookA, voA := r.Variant(0)
		hookB, voB := r.Variant(1)
		hookC, voC := r.Variant(2)
		rows = append(rows, []string{r.Day, r.Matchup, hookA, voA, hookB, voB, hookC, voC, r.AltWinner, r.AltVO})
	}
	return writeCSV([]string{"Day", "Matchup", "Hook A", "VO A", "Hook B", "VO B", "Hook C", "VO C", "Alt Winner", "Alt VO"}, rows)
}

// PollsCSV renders one poll per record.
func PollsCSV(records []generator.BattleRecord) ([]byte, error) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Day, r.Matchup, r.PollQuestion, r.PollOptions[0], r.PollOptions[1], r.PollOptions[2]})
	}
	return writeCSV([]string{"Day", "Matchup", "Question", "Option 1", "Option 2", "Option 3"}, rows)
}

// ManifestRow names an image file expected for a record.
type ManifestRow struct {
	Day    string
	File   string
	Aspect string
}

// Manifest lists the wide and tall image filenames per record, numbered by position.
func Manifest(records []generator.BattleRecord) []ManifestRow {
	rows := make([]ManifestRow, 0, 2*len(records))
	for i, r := range records {
		day := fmt.Sprintf("%02d", i+1)
		rows = append(rows,
			ManifestRow{Day: r.Day, File: fmt.Sprintf("assets/day%s/day%s_169_seed%d.jpg", day, day, r.Seed), Aspect: prompts.AspectWide},
			ManifestRow{Day: r.Day, File: fmt.Sprintf("assets/day%s/day%s_916_seed%d.jpg", day, day, r.Seed), Aspect: prompts.AspectTall},
		)
	}
	return rows
}

// ManifestCSV renders Manifest.
func ManifestCSV(records []generator.BattleRecord) ([]byte, error) {
	m := Manifest(records)
	rows := make([][]string, 0, len(m))
	for _, r := range m {
		rows = append(rows, []string{r.Day, r.File, r.Aspect})
	}
	return writeCSV([]string{"Day", "File", "Aspect"}, rows)
}
