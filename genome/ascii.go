package genome

import (
	"bytes"
	"iter"
	"unsafe"

	"github.com/forestrie/go-compactgenome/alphabet"
)

// Ascii stores one ASCII character per symbol.
type Ascii struct {
	alpha *alphabet.Alphabet
	text  []byte
}

// NewAscii validates text against a and returns the genome it spells.
func NewAscii(a *alphabet.Alphabet, text string) (*Ascii, error) {
	if err := validate(a, text); err != nil {
		return nil, err
	}
	return &Ascii{alpha: a, text: []byte(text)}, nil
}

// NewAsciiBytes is NewAscii for a byte slice. text is copied.
func NewAsciiBytes(a *alphabet.Alphabet, text []byte) (*Ascii, error) {
	if err := validate(a, text); err != nil {
		return nil, err
	}
	return &Ascii{alpha: a, text: bytes.Clone(text)}, nil
}

// validate returns an *InvalidSymbolError for the first character of text
// that is not part of a.
func validate[T ~string | ~[]byte](a *alphabet.Alphabet, text T) error {
	for i := 0; i < len(text); i++ {
		if !a.Contains(text[i]) {
			return &InvalidSymbolError{Position: i, Char: text[i]}
		}
	}
	return nil
}

func (g *Ascii) Alphabet() *alphabet.Alphabet { return g.alpha }
func (g *Ascii) Len() int                     { return len(g.text) }

func (g *Ascii) Get(i int) (alphabet.Symbol, error) {
	if err := checkIndex(i, len(g.text)); err != nil {
		return 0, err
	}
	s, _ := g.alpha.Code(g.text[i])
	return s, nil
}

func (g *Ascii) Iter() iter.Seq[alphabet.Symbol] {
	return func(yield func(alphabet.Symbol) bool) {
		for _, c := range g.text {
			s, _ := g.alpha.Code(c)
			if !yield(s) {
				return
			}
		}
	}
}

func (g *Ascii) Subsequence(start, end int) (*Ascii, error) {
	if err := checkRange(start, end, len(g.text)); err != nil {
		return nil, err
	}
	return &Ascii{alpha: g.alpha, text: bytes.Clone(g.text[start:end])}, nil
}

func (g *Ascii) ReverseComplement() (*Ascii, error) {
	if !g.alpha.HasComplement() {
		return nil, ErrNoComplement
	}
	n := len(g.text)
	text := make([]byte, n)
	for i, c := range g.text {
		s, _ := g.alpha.Code(c)
		text[n-1-i] = g.alpha.Decode(g.alpha.Complement(s))
	}
	return &Ascii{alpha: g.alpha, text: text}, nil
}

func (g *Ascii) Equal(other Genome) bool {
	if o, ok := other.(*Ascii); ok {
		return g.alpha.Same(o.alpha) && bytes.Equal(g.text, o.text)
	}
	return Equal(g, other)
}

func (g *Ascii) Hash() uint64 { return Hash(g) }

func (g *Ascii) String() string { return string(g.text) }

// Bytes returns a copy of the genome text.
func (g *Ascii) Bytes() []byte { return bytes.Clone(g.text) }

// SizeInMemory returns the approximate number of bytes the genome occupies.
func (g *Ascii) SizeInMemory() int {
	return int(unsafe.Sizeof(*g)) + cap(g.text)
}
