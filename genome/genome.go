package genome

import (
	"encoding/binary"
	"iter"

	"github.com/cespare/xxhash/v2"

	"github.com/forestrie/go-compactgenome/alphabet"
)

// Genome is the read access every genome representation provides.
type Genome interface {
	Alphabet() *alphabet.Alphabet
	Len() int

	// Get returns the symbol at index i, or an *IndexOutOfRangeError if
	// i >= Len().
	Get(i int) (alphabet.Symbol, error)

	// Iter returns the symbols in order. Each call returns an independent
	// iteration.
	Iter() iter.Seq[alphabet.Symbol]

	// String returns the genome as text. It is the exact inverse of
	// construction from text.
	String() string
}

// Sequence is a Genome whose derived values have the concrete type S.
type Sequence[S any] interface {
	Genome

	// Subsequence returns an owned copy of [start, end), or an
	// *InvalidRangeError if start > end or end > Len().
	Subsequence(start, end int) (S, error)

	// ReverseComplement returns ErrNoComplement if the alphabet defines no
	// complement.
	ReverseComplement() (S, error)

	Equal(other Genome) bool
	Hash() uint64
}

var (
	_ Sequence[*Ascii]     = (*Ascii)(nil)
	_ Sequence[*BitPacked] = (*BitPacked)(nil)
)

// at reads a symbol known to be in range.
func at(g Genome, i int) alphabet.Symbol {
	s, _ := g.Get(i)
	return s
}

// Equal reports whether a and b hold the same symbols over the same alphabet.
// The storage layout of either operand never matters.
func Equal(a, b Genome) bool {
	if a.Len() != b.Len() || !a.Alphabet().Same(b.Alphabet()) {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if at(a, i) != at(b, i) {
			return false
		}
	}
	return true
}

// Hash returns a hash of the alphabet, length and symbols of g. Genomes that
// are Equal hash equal whatever their representation.
func Hash(g Genome) uint64 {
	d := xxhash.New()

	var header [9]byte
	header[0] = byte(g.Alphabet().ID())
	binary.LittleEndian.PutUint64(header[1:], uint64(g.Len()))
	_, _ = d.Write(header[:])

	var buf [256]byte
	n := 0
	for s := range g.Iter() {
		buf[n] = byte(s)
		n++
		if n == len(buf) {
			_, _ = d.Write(buf[:])
			n = 0
		}
	}
	_, _ = d.Write(buf[:n])
	return d.Sum64()
}

// Compare orders genomes lexicographically by symbol code. A proper prefix
// orders before the longer genome. The alphabets are not compared.
func Compare(a, b Genome) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		x, y := at(a, i), at(b, i)
		if x < y {
			return -1
		}
		if x > y {
			return 1
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return 1
	}
	return 0
}
