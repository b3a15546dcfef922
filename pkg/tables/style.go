package tables

import (
	"strings"
)

// StylePack is a named visual style for image prompts.
type StylePack struct {
	Name    string   `json:"name" yaml:"name"`
	Add     []string `json:"add" yaml:"add"`
	Stylize []int    `json:"s" yaml:"s"`
}

// Preset is a per-faction palette and camera hint injected into prompts.
type Preset struct {
	Palette string `json:"palette" yaml:"palette"`
	Camera  string `json:"camera" yaml:"camera"`
}

// StyleSet is an ordered, read-only collection of style packs and presets.
// Order matters: random and rotating selection index into it.
type StyleSet struct {
	order   []string
	packs   map[string]StylePack
	presets map[string]Preset
}

// DefaultStyles returns the built-in style packs and presets.
func DefaultStyles() *StyleSet {
	s := &StyleSet{packs: map[string]StylePack{}, presets: map[string]Preset{}}
	s.addPacks([]StylePack{
		{Name: "Cinematic", Add: []string{"cinematic lighting", "storm clouds", "intense contrast"}, Stylize: []int{250, 300, 350}},
		{Name: "Documentary", Add: []string{"natural light", "dust haze", "realistic grit"}, Stylize: []int{200, 220, 240}},
		{Name: "Painterly", Add: []string{"oil-paint look", "bold color strokes", "dramatic highlights"}, Stylize: []int{300, 350, 400}},
		{Name: "TikTok-Hype", Add: []string{"explosive energy", "slow-motion sparks", "hyper-saturated colors", "viral thumbnail quality", "lightning strikes", "fire explosions"}, Stylize: []int{350, 400, 450}},
		{Name: "FULL-CRACKED-ASIAN", Add: []string{"anime battle energy", "glowing katanas", "dragon lightning", "neon storm skies", "impossible scale", "maximum chaos", "meteors raining", "fire rain cascades", "colossal banners"}, Stylize: []int{400, 450, 500}},
	})
	s.presets["Romans"] = Preset{Palette: "iron and crimson", Camera: "low-angle wide"}
	s.presets["Mongols"] = Preset{Palette: "cold steppe blues", Camera: "telephoto compression"}
	s.presets["Samurai"] = Preset{Palette: "lacquered black and vermilion", Camera: "portrait close-up"}
	s.presets["Ottomans"] = Preset{Palette: "emerald and gold", Camera: "elevated three-quarters view"}
	return s
}

func (s *StyleSet) addPacks(packs []StylePack) {
	for _, p := range packs {
		if _, ok := s.packs[p.Name]; !ok {
			s.order = append(s.order, p.Name)
		}
		s.packs[p.Name] = p
	}
}

// With returns a new set with packs and presets merged by name. Packs without
// descriptors or stylize values are ignored.
func (s *StyleSet) With(packs []StylePack, presets map[string]Preset) *StyleSet {
	next := &StyleSet{
		order:   append([]string(nil), s.order...),
		packs:   make(map[string]StylePack, len(s.packs)+len(packs)),
		presets: make(map[string]Preset, len(s.presets)+len(presets)),
	}
	for k, v := range s.packs {
		next.packs[k] = v
	}
	for k, v := range s.presets {
		next.presets[k] = v
	}
	valid := make([]StylePack, 0, len(packs))
	for _, p := range packs {
		if p.Name == "" || len(p.Add) == 0 || len(p.Stylize) == 0 {
			continue
		}
		valid = append(valid, p)
	}
	next.addPacks(valid)
	for k, v := range presets {
		next.presets[k] = v
	}
	return next
}

// Names returns pack names in order.
func (s *StyleSet) Names() []string { return append([]string(nil), s.order...) }

// Pack returns the named pack.
func (s *StyleSet) Pack(name string) (StylePack, bool) {
	p, ok := s.packs[name]
	return p, ok
}

// Preset returns the preset registered for a faction name.
func (s *StyleSet) Preset(faction string) (Preset, bool) {
	p, ok := s.presets[faction]
	return p, ok
}

// IsRandomSelector reports whether name asks for a random pack.
func IsRandomSelector(name string) bool {
	n := strings.ToLower(name)
	return n == "random" || n == "randomized"
}

// IsRotateSelector reports whether name asks for a rotating pack.
func IsRotateSelector(name string) bool {
	n := strings.ToLower(name)
	return n == "rotate" || n == "rotation"
}
