package alphabet

import (
	"fmt"
	"slices"
	"strings"
)

// Registry is an immutable set of alphabets addressable by ID and by name.
type Registry struct {
	byID   map[ID]*Alphabet
	byName map[string]*Alphabet
}

// NewRegistry returns a registry holding the built-in alphabets and extra.
func NewRegistry(extra ...*Alphabet) (*Registry, error) {
	return newRegistry(append(builtin.All(), extra...)...)
}

func newRegistry(alphabets ...*Alphabet) (*Registry, error) {
	r := &Registry{
		byID:   make(map[ID]*Alphabet, len(alphabets)),
		byName: make(map[string]*Alphabet, len(alphabets)),
	}
	for _, a := range alphabets {
		if _, ok := r.byID[a.id]; ok {
			return nil, fmt.Errorf("%w: %d", ErrIDClash, a.id)
		}
		name := strings.ToLower(a.name)
		if _, ok := r.byName[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrNameClash, a.name)
		}
		r.byID[a.id] = a
		r.byName[name] = a
	}
	return r, nil
}

func mustRegistry(alphabets ...*Alphabet) *Registry {
	r, err := newRegistry(alphabets...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the alphabet registered under id.
func (r *Registry) Lookup(id ID) (*Alphabet, bool) {
	a, ok := r.byID[id]
	return a, ok
}

// ByName returns the alphabet registered under name, ignoring case.
func (r *Registry) ByName(name string) (*Alphabet, bool) {
	a, ok := r.byName[strings.ToLower(name)]
	return a, ok
}

// All returns the registered alphabets ordered by ID.
func (r *Registry) All() []*Alphabet {
	all := make([]*Alphabet, 0, len(r.byID))
	for _, a := range r.byID {
		all = append(all, a)
	}
	slices.SortFunc(all, func(a, b *Alphabet) int { return int(a.id) - int(b.id) })
	return all
}
