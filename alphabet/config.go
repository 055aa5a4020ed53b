package alphabet

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var ErrReservedID = errors.New("alphabet: definition uses an id reserved for built-in alphabets")

// Definition is the YAML form of an alphabet.
//
//	alphabets:
//	  - id: 64
//	    name: dna-lower
//	    characters: acgt
//	    complements: tgca
type Definition struct {
	ID          uint8  `yaml:"id"`
	Name        string `yaml:"name"`
	Characters  string `yaml:"characters"`
	Complements string `yaml:"complements,omitempty"`
}

type definitionFile struct {
	Alphabets []Definition `yaml:"alphabets"`
}

// Alphabet builds the alphabet described by d.
func (d Definition) Alphabet() (*Alphabet, error) {
	if ID(d.ID) < IDUserFirst {
		return nil, fmt.Errorf("%w: %d (%s)", ErrReservedID, d.ID, d.Name)
	}
	a, err := New(ID(d.ID), d.Name, d.Characters, d.Complements)
	if err != nil {
		return nil, fmt.Errorf("alphabet %q: %w", d.Name, err)
	}
	return a, nil
}

// LoadDefinitions reads a YAML document of alphabet definitions. Unknown keys
// are rejected. An empty document yields no alphabets.
func LoadDefinitions(r io.Reader) ([]*Alphabet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file definitionFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	alphabets := make([]*Alphabet, 0, len(file.Alphabets))
	for _, d := range file.Alphabets {
		a, err := d.Alphabet()
		if err != nil {
			return nil, err
		}
		alphabets = append(alphabets, a)
	}
	return alphabets, nil
}

// LoadRegistry reads alphabet definitions and returns a registry holding them
// together with the built-in alphabets.
func LoadRegistry(r io.Reader) (*Registry, error) {
	alphabets, err := LoadDefinitions(r)
	if err != nil {
		return nil, err
	}
	return NewRegistry(alphabets...)
}
