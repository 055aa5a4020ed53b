package genome

import (
	"iter"

	"github.com/forestrie/go-compactgenome/alphabet"
	"github.com/forestrie/go-compactgenome/bitpack"
)

// ToAscii returns g as an Ascii genome over the same alphabet.
func ToAscii(g Genome) *Ascii {
	if a, ok := g.(*Ascii); ok {
		return a
	}
	alpha := g.Alphabet()
	text := make([]byte, 0, g.Len())
	for s := range g.Iter() {
		text = append(text, alpha.Decode(s))
	}
	return &Ascii{alpha: alpha, text: text}
}

// ToPacked returns g packed into W words. Symbols are copied code for code, no
// re-validation against the alphabet is needed.
func ToPacked[W bitpack.Word](g Genome) *Packed[W] {
	if p, ok := g.(*Packed[W]); ok {
		return p
	}
	b := newBuilder[W](g.Alphabet(), g.Len())
	for s := range g.Iter() {
		b.push(s)
	}
	return b.packed()
}

// ToBitPacked is ToPacked[uint64].
func ToBitPacked(g Genome) *BitPacked { return ToPacked[uint64](g) }

// Collect packs a sequence of symbol codes. It fails with ErrSymbolOutOfRange
// on the first code the alphabet does not define.
func Collect[W bitpack.Word](a *alphabet.Alphabet, symbols iter.Seq[alphabet.Symbol]) (*Packed[W], error) {
	b := newBuilder[W](a, 0)
	for s := range symbols {
		if !a.Valid(s) {
			return nil, ErrSymbolOutOfRange
		}
		b.push(s)
	}
	return b.packed(), nil
}

// CollectAscii is Collect for the Ascii representation.
func CollectAscii(a *alphabet.Alphabet, symbols iter.Seq[alphabet.Symbol]) (*Ascii, error) {
	var text []byte
	for s := range symbols {
		if !a.Valid(s) {
			return nil, ErrSymbolOutOfRange
		}
		text = append(text, a.Decode(s))
	}
	return &Ascii{alpha: a, text: text}, nil
}

// FromSymbols is Collect into the default packed representation.
func FromSymbols(a *alphabet.Alphabet, symbols iter.Seq[alphabet.Symbol]) (*BitPacked, error) {
	return Collect[uint64](a, symbols)
}
