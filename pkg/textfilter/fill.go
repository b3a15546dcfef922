package textfilter

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Width is the column limit for long generated paragraphs.
const Width = 110

// Fill collapses runs of whitespace and wraps text at width columns.
func Fill(text string, width int) string {
	flat := strings.Join(strings.Fields(text), " ")
	if width <= 0 {
		return flat
	}
	w := wordwrap.NewWriter(width)
	w.Breakpoints = nil
	_, _ = w.Write([]byte(flat))
	_ = w.Close()
	return w.String()
}

// Clean sanitizes text with the default filter and wraps it at Width.
func Clean(text string) string {
	return Fill(std.Sanitize(text), Width)
}
