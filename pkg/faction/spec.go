package faction

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Spec is the on-disk shape of a user faction definition. Numeric fields are
// pointers so a missing rating can be told apart from a zero rating.
type Spec struct {
	Name        string   `json:"name" yaml:"name"`
	Era         string   `json:"era,omitempty" yaml:"era,omitempty"`
	Ranged      *int     `json:"ranged" yaml:"ranged"`
	Cavalry     *int     `json:"cavalry" yaml:"cavalry"`
	Infantry    *int     `json:"infantry" yaml:"infantry"`
	Armor       *int     `json:"armor" yaml:"armor"`
	Discipline  *int     `json:"discipline" yaml:"discipline"`
	Siege       *int     `json:"siege" yaml:"siege"`
	Logistics   *int     `json:"logistics" yaml:"logistics"`
	Naval       *int     `json:"naval" yaml:"naval"`
	TerrainPref []string `json:"terrain_pref,omitempty" yaml:"terrain_pref,omitempty"`
	Palettes    []string `json:"palettes,omitempty" yaml:"palettes,omitempty"`
	Motifs      []string `json:"motifs,omitempty" yaml:"motifs,omitempty"`
}

// Validate reports the first missing required field.
func (s Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("faction name is required")
	}
	required := []struct {
		name string
		v    *int
	}{
		{"ranged", s.Ranged},
		{"cavalry", s.Cavalry},
		{"infantry", s.Infantry},
		{"armor", s.Armor},
		{"discipline", s.Discipline},
		{"siege", s.Siege},
		{"logistics", s.Logistics},
		{"naval", s.Naval},
	}
	for _, r := range required {
		if r.v == nil {
			return fmt.Errorf("faction %q is missing %s", s.Name, r.name)
		}
	}
	return nil
}

// Faction converts a validated spec into a Faction.
func (s Spec) Faction() (Faction, error) {
	if err := s.Validate(); err != nil {
		return Faction{}, err
	}
	attrs := Attributes{
		Ranged:     *s.Ranged,
		Cavalry:    *s.Cavalry,
		Infantry:   *s.Infantry,
		Armor:      *s.Armor,
		Discipline: *s.Discipline,
		Siege:      *s.Siege,
		Logistics:  *s.Logistics,
		Naval:      *s.Naval,
	}
	return New(s.Name, s.Era, attrs, s.TerrainPref, s.Palettes, s.Motifs), nil
}

// SpecFrom converts a faction back into its on-disk shape.
func SpecFrom(f Faction) Spec {
	a := f.Attributes
	return Spec{
		Name:        f.Name,
		Era:         f.Era,
		Ranged:      &a.Ranged,
		Cavalry:     &a.Cavalry,
		Infantry:    &a.Infantry,
		Armor:       &a.Armor,
		Discipline:  &a.Discipline,
		Siege:       &a.Siege,
		Logistics:   &a.Logistics,
		Naval:       &a.Naval,
		TerrainPref: f.TerrainPref,
		Palettes:    f.Palettes,
		Motifs:      f.Motifs,
	}
}

// Rejected describes an entry skipped while decoding overrides.
type Rejected struct {
	Key    string
	Reason string
}

// DecodeSpecs parses user faction definitions from JSON or YAML. The document
// may be a list of objects or a mapping of name to object. Malformed entries
// are skipped and reported; valid entries are returned in document order.
func DecodeSpecs(data []byte) ([]Faction, []Rejected, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, nil, fmt.Errorf("failed to parse faction overrides: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil, nil
	}
	doc := root.Content[0]

	var out []Faction
	var rejected []Rejected

	decode := func(key, name string, node *yaml.Node) {
		var s Spec
		if err := node.Decode(&s); err != nil {
			rejected = append(rejected, Rejected{Key: key, Reason: err.Error()})
			return
		}
		if name != "" {
			s.Name = name
		}
		f, err := s.Faction()
		if err != nil {
			rejected = append(rejected, Rejected{Key: key, Reason: err.Error()})
			return
		}
		out = append(out, f)
	}

	switch doc.Kind {
	case yaml.SequenceNode:
		for i, item := range doc.Content {
			if item.Kind != yaml.MappingNode {
				rejected = append(rejected, Rejected{Key: fmt.Sprintf("#%d", i), Reason: "entry is not an object"})
				continue
			}
			decode(fmt.Sprintf("#%d", i), "", item)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(doc.Content); i += 2 {
			key := doc.Content[i].Value
			item := doc.Content[i+1]
			if key == "" || item.Kind != yaml.MappingNode {
				rejected = append(rejected, Rejected{Key: key, Reason: "entry is not an object"})
				continue
			}
			decode(key, key, item)
		}
	default:
		return nil, nil, fmt.Errorf("faction overrides must be a list or a mapping")
	}

	return out, rejected, nil
}
