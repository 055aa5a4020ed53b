package alphabet

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSymbol = errors.New("alphabet: character is not part of the alphabet")

	ErrEmpty         = errors.New("alphabet: no characters")
	ErrTooLarge      = errors.New("alphabet: too many characters")
	ErrDuplicate     = errors.New("alphabet: duplicate character")
	ErrBadComplement = errors.New("alphabet: complements must be an involution over the characters")
	ErrIDClash       = errors.New("alphabet: alphabet id already registered")
	ErrNameClash     = errors.New("alphabet: alphabet name already registered")
)

// InvalidCharacterError reports a character that has no code in the alphabet.
type InvalidCharacterError struct {
	Char byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("alphabet: character %q is not part of the alphabet", e.Char)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidSymbol }
