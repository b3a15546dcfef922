package export

import (
	"archive/zip"
	"fmt"
	"io"
	"sort"

	"github.com/jwebster45206/battle-engine/pkg/generator"
)

// Options tune a bundle.
type Options struct {
	// Aspects selects the prompts in the Midjourney queue.
	Aspects Aspects
	// WindowHint is the window title the autopaste script activates.
	WindowHint string
	// Config holds user override files, stored under config/ by base name.
	Config map[string][]byte
}

// Files renders every bundle file keyed by its path inside the bundle.
func Files(records []generator.BattleRecord, opts Options) (map[string][]byte, error) {
	if opts.Aspects == "" {
		opts.Aspects = AspectsBoth
	}
	if opts.WindowHint == "" {
		opts.WindowHint = "Discord"
	}
	cleaned := Cleaned(records)
	files := make(map[string][]byte)

	renderers := []struct {
		name   string
		render func([]generator.BattleRecord) ([]byte, error)
	}{
		{"battles.csv", BattlesCSV},
		{"battles.json", BattlesJSON},
		{"midjourney_prompts.csv", PromptSheetCSV},
		{"captions_voiceover.csv", CaptionsCSV},
		{"captions_voiceover_variants.csv", VariantsCSV},
		{"polls.csv", PollsCSV},
		{"asset_manifest.csv", ManifestCSV},
	}
	for _, r := range renderers {
		data, err := r.render(cleaned)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", r.name, err)
		}
		files[r.name] = data
	}

	queue := MidjourneyQueue(cleaned, opts.Aspects)
	files["midjourney_queue.txt"] = []byte(queue)
	files["midjourney_autopaste.ahk"] = []byte(AutoPasteScript(queue, opts.WindowHint))

	for _, r := range cleaned {
		files[CardName(r)] = []byte(Card(r))
	}
	for name, data := range opts.Config {
		files["config/"+name] = data
	}
	return files, nil
}

// Bundle writes every bundle file into a ZIP archive on w, in path order.
func Bundle(w io.Writer, records []generator.BattleRecord, opts Options) error {
	files, err := Files(records, opts)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	zw := zip.NewWriter(w)
	for _, name := range names {
		fw, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		if _, err := fw.Write(files[name]); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close bundle: %w", err)
	}
	return nil
}
