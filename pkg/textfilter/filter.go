// Package textfilter scrubs generated text: banned words, era-inappropriate
// weapons and culture tokens that do not belong to the matchup.
package textfilter

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jwebster45206/battle-engine/pkg/tables"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	multiSpace    = regexp.MustCompile(`\s{2,}`)
	doubleComma   = regexp.MustCompile(`,\s*,`)
	spaceBefore   = regexp.MustCompile(`\s+,`)
	matchupTokens = regexp.MustCompile(`[A-Za-z]+`)
)

// Filter holds pre-compiled patterns for every scrub rule.
type Filter struct {
	banned       []*regexp.Regexp
	anachronisms []anachronism
	eras         []string
	names        []string
	blocklist    []string
	blockRegexes map[string]*regexp.Regexp
}

type anachronism struct {
	re          *regexp.Regexp
	replacement string
}

// Rules configures a Filter.
type Rules struct {
	Banned       []string
	Anachronisms [][2]string
	// GunpowderEras are era fragments under which anachronism replacement is
	// skipped; GunpowderNames are exact faction names with the same effect.
	GunpowderEras  []string
	GunpowderNames []string
	Blocklist      []string
}

// New compiles rules into a Filter.
func New(rules Rules) *Filter {
	f := &Filter{
		eras:         rules.GunpowderEras,
		names:        rules.GunpowderNames,
		blocklist:    rules.Blocklist,
		blockRegexes: make(map[string]*regexp.Regexp, len(rules.Blocklist)),
	}

	// Banned words are removed wherever they appear, including inside other words.
	for _, word := range rules.Banned {
		f.banned = append(f.banned, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(word)))
	}

	for _, pair := range rules.Anachronisms {
		f.anachronisms = append(f.anachronisms, anachronism{
			re:          regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(pair[0]) + `\b`),
			replacement: pair[1],
		})
	}

	for _, tok := range rules.Blocklist {
		f.blockRegexes[tok] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(tok) + `s?\b`)
	}

	return f
}

// Sanitize removes every banned word. Removal repeats until nothing matches,
// so splicing cannot reassemble a banned word.
func (f *Filter) Sanitize(text string) string {
	for {
		next := text
		for _, re := range f.banned {
			next = re.ReplaceAllString(next, "")
		}
		if next == text {
			return text
		}
		text = next
	}
}

// ContainsBanned reports whether text contains any banned word.
func (f *Filter) ContainsBanned(text string) bool {
	for _, re := range f.banned {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// GunpowderAllowed reports whether the eras or names of a matchup make
// gunpowder weapons appropriate.
func (f *Filter) GunpowderAllowed(eraA, eraB, nameA, nameB string) bool {
	eras := eraA + eraB
	for _, frag := range f.eras {
		if strings.Contains(eras, frag) {
			return true
		}
	}
	for _, name := range f.names {
		if nameA == name || nameB == name {
			return true
		}
	}
	return false
}

// ReplaceAnachronisms swaps gunpowder weapons for their pre-gunpowder
// counterparts, keeping the case of the original word.
func (f *Filter) ReplaceAnachronisms(text string) string {
	for _, a := range f.anachronisms {
		text = a.re.ReplaceAllStringFunc(text, func(match string) string {
			return preserveCase(match, a.replacement)
		})
	}
	return text
}

// Autoclean strips blocklisted culture tokens (and their simple plurals) that
// are not words of matchup, then collapses leftover spacing and commas.
func (f *Filter) Autoclean(prompt, matchup string) string {
	keep := make(map[string]bool)
	for _, w := range matchupTokens.FindAllString(strings.ToLower(matchup), -1) {
		keep[w] = true
	}

	p := prompt
	for _, tok := range f.blocklist {
		if keep[tok] {
			continue
		}
		p = f.blockRegexes[tok].ReplaceAllString(p, "")
	}

	p = multiSpace.ReplaceAllString(p, " ")
	p = doubleComma.ReplaceAllString(p, ", ")
	p = spaceBefore.ReplaceAllString(p, ",")
	// comma repair can leave a double space behind
	return strings.Join(strings.Fields(p), " ")
}

// preserveCase applies the case pattern of the original word to the replacement
func preserveCase(original, replacement string) string {
	if len(original) == 0 {
		return replacement
	}

	if strings.ToUpper(original) == original {
		return strings.ToUpper(replacement)
	}

	if strings.ToLower(original) == original {
		return strings.ToLower(replacement)
	}

	titleCaser := cases.Title(language.English)
	if titleCaser.String(strings.ToLower(original)) == original {
		return titleCaser.String(replacement)
	}

	// Mixed case: copy case rune by rune, lowercase past the original's end.
	originalRunes := []rune(original)
	result := []rune(replacement)
	for i, r := range result {
		if i < len(originalRunes) && unicode.IsUpper(originalRunes[i]) {
			result[i] = unicode.ToUpper(r)
		} else {
			result[i] = unicode.ToLower(r)
		}
	}
	return string(result)
}

var std = New(Rules{
	Banned:         tables.Banned,
	Anachronisms:   tables.Anachronisms,
	GunpowderEras:  tables.GunpowderEras,
	GunpowderNames: tables.GunpowderNames,
	Blocklist:      tables.MismatchBlocklist,
})

// Default returns the filter built from the standard word lists.
func Default() *Filter { return std }
