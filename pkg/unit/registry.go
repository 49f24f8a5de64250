package unit

import (
	"sort"
	"sync"
)

// AliasManager maps alias symbols ("N", "Pa") to fully resolved prefixed
// units. It is the only mutable shared state in the package; all methods are
// safe for concurrent use. Registries are independent values so tests and
// embedders can keep isolated namespaces.
type AliasManager struct {
	mu      sync.RWMutex
	aliases map[string]Prefixed
}

// NewAliasManager creates an empty registry.
func NewAliasManager() *AliasManager {
	return &AliasManager{aliases: make(map[string]Prefixed)}
}

// Register stores an alias. Re-registering an identical definition is a
// no-op; a different definition fails with AliasConflictError.
func (m *AliasManager) Register(name string, u Prefixed) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.aliases[name]; ok {
		if existing.Equal(u) {
			return nil
		}
		return &AliasConflictError{Name: name, Existing: existing, Proposed: u}
	}
	m.aliases[name] = u
	return nil
}

// Resolve looks up an alias, failing with UnknownAliasError when absent.
func (m *AliasManager) Resolve(name string) (Prefixed, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.aliases[name]
	if !ok {
		return Prefixed{}, &UnknownAliasError{Name: name}
	}
	return u, nil
}

// Has reports whether an alias is registered.
func (m *AliasManager) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.aliases[name]
	return ok
}

// Unregister removes an alias if present; no-op otherwise.
func (m *AliasManager) Unregister(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.aliases, name)
}

// Names returns the registered alias names, sorted.
func (m *AliasManager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.aliases))
	for name := range m.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered aliases.
func (m *AliasManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.aliases)
}

// DefaultAliases is the process-wide registry used by Parse. It starts out
// seeded with the common SI derived units.
var DefaultAliases = NewDefaultAliases()

// NewDefaultAliases creates a registry pre-loaded with the SI derived units
// (N, J, W, ...) and a handful of accepted non-SI units with non-unit
// scales (g, min, h, bar, ...).
func NewDefaultAliases() *AliasManager {
	m := NewAliasManager()

	newton := NewComposition(map[Fundamental]int{Mass: 1, Length: 1, Time: -2})
	joule := NewComposition(map[Fundamental]int{Mass: 1, Length: 2, Time: -2})
	watt := NewComposition(map[Fundamental]int{Mass: 1, Length: 2, Time: -3})
	coulomb := NewComposition(map[Fundamental]int{Current: 1, Time: 1})
	volt := NewComposition(map[Fundamental]int{Mass: 1, Length: 2, Time: -3, Current: -1})
	ohm := NewComposition(map[Fundamental]int{Mass: 1, Length: 2, Time: -3, Current: -2})
	hertz := NewComposition(map[Fundamental]int{Time: -1})
	pascal := NewComposition(map[Fundamental]int{Mass: 1, Length: -1, Time: -2})
	tesla := NewComposition(map[Fundamental]int{Mass: 1, Time: -2, Current: -1})
	farad := NewComposition(map[Fundamental]int{Mass: -1, Length: -2, Time: 4, Current: 2})
	weber := NewComposition(map[Fundamental]int{Mass: 1, Length: 2, Time: -2, Current: -1})
	henry := NewComposition(map[Fundamental]int{Mass: 1, Length: 2, Time: -2, Current: -2})

	derived := map[string]Composition{
		"N":   newton,
		"J":   joule,
		"W":   watt,
		"C":   coulomb,
		"V":   volt,
		"Ohm": ohm,
		"Ω":   ohm,
		"Hz":  hertz,
		"Pa":  pascal,
		"T":   tesla,
		"F":   farad,
		"Wb":  weber,
		"H":   henry,
	}
	for name, comp := range derived {
		_ = m.Register(name, NewPrefixed(1, comp))
	}

	// Accepted non-SI units: multiplicative rescalings of SI compositions.
	scaled := map[string]Prefixed{
		"g":    NewPrefixed(1e-3, Base(Mass)),
		"ton":  NewPrefixed(1e3, Base(Mass)),
		"L":    NewPrefixed(1e-3, NewComposition(map[Fundamental]int{Length: 3})),
		"min":  NewPrefixed(60, Base(Time)),
		"h":    NewPrefixed(3600, Base(Time)),
		"day":  NewPrefixed(86400, Base(Time)),
		"week": NewPrefixed(604800, Base(Time)),
		"year": NewPrefixed(31557600, Base(Time)),
		"bar":  NewPrefixed(1e5, pascal),
		"atm":  NewPrefixed(101325, pascal),
		"eV":   NewPrefixed(1.60217662e-19, joule),
		"cal":  NewPrefixed(4.184, joule),
	}
	for name, u := range scaled {
		_ = m.Register(name, u)
	}

	return m
}
