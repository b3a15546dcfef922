package faction

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Fallback factions used when a matchup names an unknown faction.
const (
	DefaultSideA = "Romans"
	DefaultSideB = "Samurai"
)

// ErrUnknownFaction is returned when a strict lookup misses.
var ErrUnknownFaction = errors.New("unknown faction")

// Registry is an ordered, read-only set of factions keyed by name.
// It is built once and replaced, never mutated, when overrides arrive.
type Registry struct {
	order []string
	byKey map[string]Faction
}

// NewRegistry builds a registry from factions in order; later entries with the
// same name replace earlier ones in place.
func NewRegistry(factions ...Faction) *Registry {
	r := &Registry{byKey: make(map[string]Faction, len(factions))}
	r.merge(factions)
	return r
}

// Default returns a registry holding the built-in catalog.
func Default() *Registry {
	return NewRegistry(Catalog()...)
}

// With returns a new registry where overrides replace same-named factions and
// new names are appended. The receiver is unchanged.
func (r *Registry) With(overrides ...Faction) *Registry {
	next := &Registry{
		order: append([]string(nil), r.order...),
		byKey: make(map[string]Faction, len(r.byKey)+len(overrides)),
	}
	for k, v := range r.byKey {
		next.byKey[k] = v
	}
	next.merge(overrides)
	return next
}

func (r *Registry) merge(factions []Faction) {
	for _, f := range factions {
		if f.Name == "" {
			continue
		}
		if _, ok := r.byKey[f.Name]; !ok {
			r.order = append(r.order, f.Name)
		}
		r.byKey[f.Name] = f
	}
}

// Get returns the named faction.
func (r *Registry) Get(name string) (Faction, bool) {
	f, ok := r.byKey[name]
	return f, ok
}

// Lookup returns the named faction or ErrUnknownFaction.
func (r *Registry) Lookup(name string) (Faction, error) {
	if f, ok := r.byKey[name]; ok {
		return f, nil
	}
	return Faction{}, fmt.Errorf("%w: %q", ErrUnknownFaction, name)
}

// LookupOr returns the named faction, falling back to the fallback name and
// then to the first registered faction. The bool reports whether name matched.
func (r *Registry) LookupOr(name, fallback string) (Faction, bool) {
	if f, ok := r.byKey[name]; ok {
		return f, true
	}
	if f, ok := r.byKey[fallback]; ok {
		return f, false
	}
	if len(r.order) > 0 {
		return r.byKey[r.order[0]], false
	}
	return New(fallback, "", Attributes{}, nil, nil, nil), false
}

// Names returns faction names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// All returns factions in registration order.
func (r *Registry) All() []Faction {
	out := make([]Faction, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.byKey[n])
	}
	return out
}

// Len returns the number of factions.
func (r *Registry) Len() int {
	return len(r.order)
}

// Search finds factions by name or era: exact, prefix and substring name
// matches first, then era matches. The result is sorted; an empty query
// returns every name sorted.
func (r *Registry) Search(query string) []string {
	if strings.TrimSpace(query) == "" {
		names := r.Names()
		sort.Strings(names)
		return names
	}

	q := strings.ToLower(query)
	seen := make(map[string]bool)
	var matches []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			matches = append(matches, name)
		}
	}

	for _, n := range r.order {
		if strings.ToLower(n) == q {
			add(n)
		}
	}
	for _, n := range r.order {
		if strings.HasPrefix(strings.ToLower(n), q) {
			add(n)
		}
	}
	for _, n := range r.order {
		if strings.Contains(strings.ToLower(n), q) {
			add(n)
		}
	}
	for _, n := range r.order {
		if strings.Contains(strings.ToLower(r.byKey[n].Era), q) {
			add(n)
		}
	}

	sort.Strings(matches)
	return matches
}
