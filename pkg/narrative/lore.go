package narrative

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/rng"
	"github.com/jwebster45206/battle-engine/pkg/textfilter"
)

// Lore seeds are a pure function of the index.
const (
	loreSeedFactor  = 100003
	altIndexOffset  = 77
	variantSpread   = 10
	DefaultVariants = 3
	MaxVariants     = 10
	altSuffix       = " (alt timeline)"
)

// Tone is the stylistic register of a lore set.
type Tone string

const (
	ToneMythic    Tone = "mythic"
	ToneTactical  Tone = "tactical"
	ToneCinematic Tone = "cinematic"
)

var tones = []Tone{ToneMythic, ToneTactical, ToneCinematic}

// POV is the narrating voice.
type POV string

const (
	POVNone      POV = "none"
	POVSoldier   POV = "soldier"
	POVCommander POV = "commander"
	POVBard      POV = "bard"
	POVMixed     POV = "mixed"
)

// ParsePOV normalises a voice name; unknown names narrate without a voice.
func ParsePOV(s string) POV {
	switch p := POV(strings.ToLower(strings.TrimSpace(s))); p {
	case POVSoldier, POVCommander, POVBard, POVMixed, POVNone:
		return p
	case "":
		return POVMixed
	default:
		return POVNone
	}
}

var (
	hookTemplates = []string{
		"What if {A} met {B} at full strength on {terrain}?",
		"{eraA} vs {eraB}: whose banners hold when steel meets storm?",
		"As fierce as {compare}, but {twist}.",
		"Prophecy whispers and drums thunder—{A} against {B} under blazing skies.",
	}
	tacticalTemplates = []string{
		"{attacker} seizes initiative; a sudden push at the {flank} widens into a breach.",
		"Missiles rake the line; {winner} press while {loser} staggers over {terrain}.",
		"A {moment} turns the field; discipline and timing decide it in {duration}.",
	}
	fanTemplates = []string{
		"Does discipline beat zeal? Your call.",
		"Tap left for cavalry, right for archers.",
		"Who carries the banners at dusk? Vote below.",
		"Is logistics the real hero? Decide the victor.",
	}
	comparePool = []string{"Yarmouk", "Cannae", "Hattin", "Ain Jalut", "Thermopylae", "Hastings"}
	twists      = []string{
		"brother versus brother", "under twin comets", "in a dust‑storm crossing", "with drums echoing over dunes",
		"as night falls early", "with reserves late to the field",
	}
	moments = []string{"flank charge", "shield‑wall collapse", "arrow storm lull", "cavalry counter‑thrust", "river ford panic"}
	flanks  = []string{"left", "right", "center", "river bank", "ridge"}
	mixable = []POV{POVSoldier, POVCommander, POVBard, POVNone}
)

type quote struct {
	text, author string
}

var quotes = []quote{
	{"In the midst of chaos, there is also opportunity.", "Sun Tzu"},
	{"Strategy without tactics is the slowest route to victory. Tactics without strategy is the noise before defeat.", "Sun Tzu"},
	{"The past resembles the future more than one drop of water resembles another.", "Ibn Khaldun"},
	{"Great deeds are usually wrought at great risks.", "Herodotus"},
}

// LoreInput is the battle state lore is written about.
type LoreInput struct {
	A, B        faction.Faction
	Winner      string
	Loser       string
	Attacker    string
	TerrainDesc string
	Duration    string
}

// Lore is one set of short-form text.
type Lore struct {
	Hook     string `json:"hook"`
	Tactical string `json:"tactical"`
	Fan      string `json:"fan"`
	VO       string `json:"vo"`
	Quote    string `json:"quote,omitempty"`
	Tone     Tone   `json:"tone"`
	POV      POV    `json:"pov"`
}

// Generate reseeds s to index×100003 and writes one lore set. Draw order:
// hook template, comparison, twist, tactical template, moment, flank, fan
// line, mixed voice (even indices only), quote (index mod 3 == 1 only).
func Generate(in LoreInput, index int, pov POV, s *rng.Stream) Lore {
	s.Reseed(int64(index) * loreSeedFactor)

	terrain, _, _ := strings.Cut(in.TerrainDesc, ",")
	duration := in.Duration
	if duration == "" {
		duration = "hours"
	}

	hookTpl := rng.Choice(s, hookTemplates)
	hook := strings.NewReplacer(
		"{A}", in.A.Name, "{B}", in.B.Name, "{eraA}", in.A.Era, "{eraB}", in.B.Era, "{terrain}", terrain,
		"{compare}", rng.Choice(s, comparePool), "{twist}", rng.Choice(s, twists),
	).Replace(hookTpl)

	tacTpl := rng.Choice(s, tacticalTemplates)
	tac := strings.NewReplacer(
		"{attacker}", in.Attacker, "{winner}", in.Winner, "{loser}", in.Loser, "{terrain}", terrain,
		"{duration}", duration, "{moment}", rng.Choice(s, moments), "{flank}", rng.Choice(s, flanks),
	).Replace(tacTpl)

	fan := rng.Choice(s, fanTemplates)

	tone := tones[mod(index, len(tones))]
	switch tone {
	case ToneMythic:
		hook += " Omens blaze overhead; each side claims mandate."
	case ToneCinematic:
		tac += " Dust turns to sparks in the gale; banners whip like lightning."
	}

	if index%5 == 0 {
		hook = "I was there—" + lowerFirst(hook)
	}
	if index%7 == 0 {
		fan += " Had that charge landed, would the map be different?"
	}

	if pov == POVMixed {
		pov = POVNone
		if index%2 == 0 {
			pov = rng.Choice(s, mixable)
		}
	}
	switch pov {
	case POVSoldier:
		hook = "I " + lowerFirst(hook)
		tac = "From the ranks, " + lowerFirst(tac)
	case POVCommander:
		hook = "From my saddle I considered this: " + lowerFirst(hook)
		tac = "I commit reserves as " + lowerFirst(tac)
	case POVBard:
		hook = "Hear now: " + hook
		tac = "Let the record sing—" + lowerFirst(tac)
	default:
		pov = POVNone
	}

	f := textfilter.Default()
	l := Lore{
		Hook:     f.Sanitize(hook),
		Tactical: f.Sanitize(tac),
		Fan:      f.Sanitize(fan),
		VO:       f.Sanitize(hook + " " + tac + " " + fan),
		Tone:     tone,
		POV:      pov,
	}
	if mod(index, 3) == 1 {
		q := rng.Choice(s, quotes)
		l.Quote = f.Sanitize(fmt.Sprintf("\"%s\" — %s", q.text, q.author))
	}
	return l
}

// Variants writes count lore sets (at least one, at most MaxVariants) at
// indices index×10+i.
func Variants(in LoreInput, index, count int, pov POV, s *rng.Stream) []Lore {
	count = min(max(1, count), MaxVariants)
	out := make([]Lore, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, Generate(in, index*variantSpread+i, pov, s))
	}
	return out
}

// Alt is the alternate-timeline retelling.
type Alt struct {
	Winner string `json:"winner"`
	VO     string `json:"vo"`
	Lore   Lore   `json:"lore"`
}

// AltTimeline retells the battle with the winner flipped, at index+77 with a
// mixed voice. Outcome and casualty data are untouched.
func AltTimeline(in LoreInput, index int, s *rng.Stream) Alt {
	in.Winner, in.Loser = in.Loser, in.Winner
	l := Generate(in, index+altIndexOffset, POVMixed, s)
	return Alt{Winner: in.Winner, VO: l.VO + altSuffix, Lore: l}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
