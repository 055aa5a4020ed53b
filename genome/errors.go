package genome

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-compactgenome/alphabet"
)

var (
	ErrIndexOutOfRange  = errors.New("genome: index out of range")
	ErrInvalidRange     = errors.New("genome: invalid range")
	ErrNoComplement     = errors.New("genome: alphabet defines no complement")
	ErrSymbolOutOfRange = errors.New("genome: symbol code outside the alphabet")
)

var (
	ErrBadLayoutSize   = errors.New("genome: persisted data length does not match its header")
	ErrUnknownAlphabet = errors.New("genome: persisted alphabet id is not registered")
	ErrBadWordWidth    = errors.New("genome: persisted word width does not match the requested word type")
	ErrBadPadding      = errors.New("genome: persisted padding bits are not zero")
)

// InvalidSymbolError reports the first character of a text that is not part
// of the genome's alphabet.
type InvalidSymbolError struct {
	Position int
	Char     byte
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("genome: invalid symbol %q at position %d", e.Char, e.Position)
}

func (e *InvalidSymbolError) Unwrap() error { return alphabet.ErrInvalidSymbol }

// IndexOutOfRangeError reports a Get with Index >= Len.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("genome: index %d out of range for length %d", e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }

// InvalidRangeError reports a Subsequence with Start > End or End > Len.
type InvalidRangeError struct {
	Start int
	End   int
	Len   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("genome: invalid range [%d, %d) for length %d", e.Start, e.End, e.Len)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &IndexOutOfRangeError{Index: i, Len: n}
	}
	return nil
}

func checkRange(start, end, n int) error {
	if start < 0 || start > end || end > n {
		return &InvalidRangeError{Start: start, End: end, Len: n}
	}
	return nil
}
