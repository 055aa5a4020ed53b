package alphabet

import (
	"fmt"
	"math/bits"
)

// Symbol is the code of a character, in [0, Size()).
type Symbol uint8

// ID identifies an alphabet in persisted data.
type ID uint8

// MaxSize is the largest number of characters an alphabet may hold. Codes are
// stored in a byte and 0xff is reserved to mark characters outside the
// alphabet.
const MaxSize = 255

const noCode = 0xff

// Alphabet is an ordered set of ASCII characters. The zero value is not
// usable; construct alphabets with New.
type Alphabet struct {
	id         ID
	name       string
	characters []byte
	codes      [256]uint8
	complement []Symbol
	bits       uint
}

// New creates an alphabet whose symbols are the bytes of characters, in order.
//
// complements is either empty, meaning the alphabet defines no complement, or
// holds the complement character of each entry of characters at the same
// position. The complement mapping must be its own inverse, so that taking the
// reverse complement twice yields the original genome.
func New(id ID, name string, characters string, complements string) (*Alphabet, error) {
	if len(characters) == 0 {
		return nil, ErrEmpty
	}
	if len(characters) > MaxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(characters), MaxSize)
	}

	a := &Alphabet{
		id:         id,
		name:       name,
		characters: []byte(characters),
		bits:       uint(bits.Len(uint(len(characters) - 1))),
	}
	for i := range a.codes {
		a.codes[i] = noCode
	}
	for i := 0; i < len(characters); i++ {
		c := characters[i]
		if a.codes[c] != noCode {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, c)
		}
		a.codes[c] = uint8(i)
	}

	if complements == "" {
		return a, nil
	}
	if len(complements) != len(characters) {
		return nil, fmt.Errorf("%w: %d complements for %d characters", ErrBadComplement, len(complements), len(characters))
	}
	a.complement = make([]Symbol, len(characters))
	for i := 0; i < len(complements); i++ {
		code := a.codes[complements[i]]
		if code == noCode {
			return nil, fmt.Errorf("%w: %q is not a character", ErrBadComplement, complements[i])
		}
		a.complement[i] = Symbol(code)
	}
	for i, c := range a.complement {
		if a.complement[c] != Symbol(i) {
			return nil, fmt.Errorf("%w: %q", ErrBadComplement, characters[i])
		}
	}
	return a, nil
}

// MustNew is like New but panics on error. It is intended for package level
// alphabet definitions.
func MustNew(id ID, name string, characters string, complements string) *Alphabet {
	a, err := New(id, name, characters, complements)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Alphabet) ID() ID       { return a.id }
func (a *Alphabet) Name() string { return a.name }
func (a *Alphabet) Size() int    { return len(a.characters) }

// BitsPerSymbol returns ceil(log2(Size())).
func (a *Alphabet) BitsPerSymbol() uint { return a.bits }

// Characters returns the characters of the alphabet in symbol order.
func (a *Alphabet) Characters() string { return string(a.characters) }

// Symbols enumerates every symbol of the alphabet in order.
func (a *Alphabet) Symbols() []Symbol {
	symbols := make([]Symbol, len(a.characters))
	for i := range symbols {
		symbols[i] = Symbol(i)
	}
	return symbols
}

// Code returns the symbol for c, and false if c is not part of the alphabet.
func (a *Alphabet) Code(c byte) (Symbol, bool) {
	code := a.codes[c]
	return Symbol(code), code != noCode
}

// Contains reports whether c is part of the alphabet.
func (a *Alphabet) Contains(c byte) bool {
	return a.codes[c] != noCode
}

// Encode returns the symbol for c.
func (a *Alphabet) Encode(c byte) (Symbol, error) {
	s, ok := a.Code(c)
	if !ok {
		return 0, &InvalidCharacterError{Char: c}
	}
	return s, nil
}

// Decode returns the character for s. s must be a valid symbol of the
// alphabet; symbols are range checked before they are stored, so an out of
// range symbol is a programming error and panics.
func (a *Alphabet) Decode(s Symbol) byte {
	return a.characters[s]
}

// Valid reports whether s is a code of the alphabet.
func (a *Alphabet) Valid(s Symbol) bool {
	return int(s) < len(a.characters)
}

// HasComplement reports whether the alphabet defines complements.
func (a *Alphabet) HasComplement() bool { return a.complement != nil }

// Complement returns the complement of s. It returns s unchanged if the
// alphabet defines no complement.
func (a *Alphabet) Complement(s Symbol) Symbol {
	if a.complement == nil {
		return s
	}
	return a.complement[s]
}

// Same reports whether a and b describe the same alphabet: the same ID and the
// same characters in the same order.
func (a *Alphabet) Same(b *Alphabet) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.id == b.id && string(a.characters) == string(b.characters)
}

func (a *Alphabet) String() string {
	return fmt.Sprintf("%s(%d)", a.name, a.id)
}
