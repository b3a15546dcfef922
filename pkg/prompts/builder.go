package prompts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/rng"
	"github.com/jwebster45206/battle-engine/pkg/tables"
)

// Aspect ratio markers appended to each prompt.
const (
	AspectWide = "16:9"
	AspectTall = "9:16"
)

// ChaosValues are the candidate --chaos settings.
var ChaosValues = []int{0, 7, 12}

// CameraWide and CameraTall are the camera-angle pools per aspect ratio.
var (
	CameraWide = []string{
		"ultra-wide anime energy shot, meteors raining from neon storm skies, armies colliding in fire rain, hyper detail chaos, thunder explosions",
		"drone zoom over colossal banners whipping in hurricane winds, neon lightning splitting dimensions, sparks and debris tornados, cinematic mayhem",
		"ground smash perspective, dust explosions with fire rain, motion blur soldiers mid-leap through meteor showers, impossible scale energy",
	}
	CameraTall = []string{
		"vertical anime close-up, glowing katana eyes, neon sparks erupting, furious clash mid-frame with dragon lightning",
		"low-angle towering samurai vs cavalry, colossal banners exploding overhead, neon storm skies tearing reality",
		"tight TikTok crop, chaotic firelight with anime energy, steel sparks mid-swing, viral shot composition with meteor rain",
	}
)

// Pair is a wide and a tall prompt for the same scene.
type Pair struct {
	Wide string `json:"wide"`
	Tall string `json:"tall"`
}

// Builder assembles a prompt pair using a fluent interface.
type Builder struct {
	styles      *tables.StyleSet
	a, b        *faction.Faction
	terrainDesc string
	style       string
	rotation    int
}

// New creates a builder over the given style set; nil selects the built-in styles.
func New(styles *tables.StyleSet) *Builder {
	if styles == nil {
		styles = tables.DefaultStyles()
	}
	return &Builder{styles: styles, style: tables.DefaultStylePack}
}

// WithFactions sets both sides.
func (b *Builder) WithFactions(sideA, sideB faction.Faction) *Builder {
	b.a, b.b = &sideA, &sideB
	return b
}

// WithTerrain sets the terrain and weather description.
func (b *Builder) WithTerrain(desc string) *Builder {
	b.terrainDesc = desc
	return b
}

// WithStyle sets the style pack name or a random/rotate selector.
func (b *Builder) WithStyle(name string) *Builder {
	b.style = name
	return b
}

// WithRotation sets the counter used by the rotate selector.
func (b *Builder) WithRotation(idx int) *Builder {
	b.rotation = idx
	return b
}

// Build draws from s and returns the prompt pair. Draw order: style (random
// selector only), stylize, palette, motif A, motif B, wide camera, tall
// camera, chaos.
func (b *Builder) Build(s *rng.Stream) (Pair, error) {
	if b.a == nil || b.b == nil {
		return Pair{}, errors.New("both factions are required")
	}
	if s == nil {
		return Pair{}, errors.New("random stream is required")
	}

	style := ResolveStyle(b.styles, b.style, b.rotation, s)
	adds := strings.Join(style.Add, ", ")
	stylize := rng.Choice(s, style.Stylize)

	palettes := make([]string, 0, len(b.a.Palettes)+len(b.b.Palettes))
	palettes = append(append(palettes, b.a.Palettes...), b.b.Palettes...)
	palette := rng.Choice(s, palettes)

	motifs := rng.Choice(s, b.a.Motifs) + ", " + rng.Choice(s, b.b.Motifs)
	wideCam := rng.Choice(s, CameraWide)
	tallCam := rng.Choice(s, CameraTall)
	chaos := rng.Choice(s, ChaosValues)

	head := fmt.Sprintf("%s vs %s, %s, %s, %s, %s", b.a.Name, b.b.Name, b.terrainDesc, motifs, palette, adds)
	suffix := fmt.Sprintf("--v 6 --style raw --s %d --chaos %d", stylize, chaos)
	return Pair{
		Wide: fmt.Sprintf("%s, %s --ar %s %s", head, wideCam, AspectWide, suffix),
		Tall: fmt.Sprintf("%s, %s --ar %s %s", head, tallCam, AspectTall, suffix),
	}, nil
}

// ResolveStyleName picks a pack name: exact match, then random or rotate
// selectors, then the default pack. Only the random selector draws from s.
func ResolveStyleName(styles *tables.StyleSet, name string, rotation int, s *rng.Stream) string {
	if _, ok := styles.Pack(name); ok {
		return name
	}
	names := styles.Names()
	if len(names) == 0 {
		return tables.DefaultStylePack
	}
	switch {
	case tables.IsRandomSelector(name):
		return rng.Choice(s, names)
	case tables.IsRotateSelector(name):
		i := rotation % len(names)
		if i < 0 {
			i += len(names)
		}
		return names[i]
	}
	return tables.DefaultStylePack
}

// ResolveStyle returns the pack ResolveStyleName selects.
func ResolveStyle(styles *tables.StyleSet, name string, rotation int, s *rng.Stream) tables.StylePack {
	if p, ok := styles.Pack(ResolveStyleName(styles, name, rotation, s)); ok {
		return p
	}
	p, _ := tables.DefaultStyles().Pack(tables.DefaultStylePack)
	return p
}
