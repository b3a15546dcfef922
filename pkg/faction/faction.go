package faction

// Attribute limits; every attribute value lives in [MinAttribute, MaxAttribute].
const (
	MinAttribute = 0
	MaxAttribute = 5
)

// Defaults substituted when a definition leaves a list or the era empty.
const (
	DefaultEra     = "Custom"
	DefaultTerrain = "plains"
	DefaultPalette = "neutral tones"
	DefaultMotif   = "banners"
)

// Attributes holds the eight combat ratings of a faction.
type Attributes struct {
	Ranged     int `json:"ranged" yaml:"ranged"`
	Cavalry    int `json:"cavalry" yaml:"cavalry"`
	Infantry   int `json:"infantry" yaml:"infantry"`
	Armor      int `json:"armor" yaml:"armor"`
	Discipline int `json:"discipline" yaml:"discipline"`
	Siege      int `json:"siege" yaml:"siege"`
	Logistics  int `json:"logistics" yaml:"logistics"`
	Naval      int `json:"naval" yaml:"naval"`
}

// Clamped returns a copy with every rating forced into [0,5].
func (a Attributes) Clamped() Attributes {
	return Attributes{
		Ranged:     clamp(a.Ranged),
		Cavalry:    clamp(a.Cavalry),
		Infantry:   clamp(a.Infantry),
		Armor:      clamp(a.Armor),
		Discipline: clamp(a.Discipline),
		Siege:      clamp(a.Siege),
		Logistics:  clamp(a.Logistics),
		Naval:      clamp(a.Naval),
	}
}

func clamp(v int) int {
	if v < MinAttribute {
		return MinAttribute
	}
	if v > MaxAttribute {
		return MaxAttribute
	}
	return v
}

// Faction is an immutable combatant archetype. Build values with New so the
// attribute and list invariants hold; edits replace the whole value.
type Faction struct {
	Name        string     `json:"name"`
	Era         string     `json:"era"`
	Attributes  Attributes `json:"attributes"`
	TerrainPref []string   `json:"terrain_pref"`
	Palettes    []string   `json:"palettes"`
	Motifs      []string   `json:"motifs"`
}

// New builds a faction, clamping attributes and substituting defaults for empty
// era and lists. Slices are copied.
func New(name, era string, attrs Attributes, terrain, palettes, motifs []string) Faction {
	if era == "" {
		era = DefaultEra
	}
	return Faction{
		Name:        name,
		Era:         era,
		Attributes:  attrs.Clamped(),
		TerrainPref: orDefault(terrain, DefaultTerrain),
		Palettes:    orDefault(palettes, DefaultPalette),
		Motifs:      orDefault(motifs, DefaultMotif),
	}
}

func orDefault(items []string, fallback string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it != "" {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return []string{fallback}
	}
	return out
}

// PrefersTerrain reports whether key is one of the faction's preferred terrains.
func (f Faction) PrefersTerrain(key string) bool {
	for _, t := range f.TerrainPref {
		if t == key {
			return true
		}
	}
	return false
}
