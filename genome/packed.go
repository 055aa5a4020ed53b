package genome

import (
	"iter"
	"slices"
	"strings"
	"unsafe"

	"github.com/forestrie/go-compactgenome/alphabet"
	"github.com/forestrie/go-compactgenome/bitpack"
)

// Packed stores each symbol in alphabet.BitsPerSymbol() bits inside a buffer
// of W words.
//
// len(words) is always ceil(n*bitsPerSymbol / bits(W)) and every bit at or
// beyond n*bitsPerSymbol is zero. n, not the buffer, is the length of the
// genome.
type Packed[W bitpack.Word] struct {
	alpha *alphabet.Alphabet
	words []W
	n     int
}

// BitPacked is the default packed representation.
type BitPacked = Packed[uint64]

// NewPacked validates text against a and packs it into W words.
func NewPacked[W bitpack.Word](a *alphabet.Alphabet, text string) (*Packed[W], error) {
	return packText[W](a, text)
}

// NewPackedBytes is NewPacked for a byte slice.
func NewPackedBytes[W bitpack.Word](a *alphabet.Alphabet, text []byte) (*Packed[W], error) {
	return packText[W](a, text)
}

// NewBitPacked packs text into 64 bit words.
func NewBitPacked(a *alphabet.Alphabet, text string) (*BitPacked, error) {
	return packText[uint64](a, text)
}

func packText[W bitpack.Word, T ~string | ~[]byte](a *alphabet.Alphabet, text T) (*Packed[W], error) {
	b := newBuilder[W](a, len(text))
	for i := 0; i < len(text); i++ {
		s, ok := a.Code(text[i])
		if !ok {
			return nil, &InvalidSymbolError{Position: i, Char: text[i]}
		}
		b.push(s)
	}
	return b.packed(), nil
}

// builder appends symbols at a running bit cursor. The words it allocates start
// zeroed, so the padding invariant holds for whatever it has built so far.
type builder[W bitpack.Word] struct {
	alpha  *alphabet.Alphabet
	bps    uint
	words  []W
	cursor uint64
	n      int
}

func newBuilder[W bitpack.Word](a *alphabet.Alphabet, sizeHint int) *builder[W] {
	return &builder[W]{
		alpha: a,
		bps:   a.BitsPerSymbol(),
		words: make([]W, 0, bitpack.WordsFor[W](uint64(sizeHint), a.BitsPerSymbol())),
	}
}

func (b *builder[W]) push(s alphabet.Symbol) {
	end := b.cursor + uint64(b.bps)
	if need := bitpack.WordsFor[W](uint64(b.n+1), b.bps); uint64(len(b.words)) < need {
		b.words = append(b.words, make([]W, need-uint64(len(b.words)))...)
	}
	bitpack.Insert(b.words, b.cursor, b.bps, uint64(s))
	b.cursor = end
	b.n++
}

func (b *builder[W]) packed() *Packed[W] {
	return &Packed[W]{alpha: b.alpha, words: b.words, n: b.n}
}

func (p *Packed[W]) Alphabet() *alphabet.Alphabet { return p.alpha }
func (p *Packed[W]) Len() int                     { return p.n }

// WordBits returns the width of the storage words in bits.
func (p *Packed[W]) WordBits() uint { return bitpack.WordBits[W]() }

// Words returns a copy of the storage words.
func (p *Packed[W]) Words() []W { return slices.Clone(p.words) }

func (p *Packed[W]) symbol(i int) alphabet.Symbol {
	bps := p.alpha.BitsPerSymbol()
	return alphabet.Symbol(bitpack.Extract(p.words, uint64(i)*uint64(bps), bps))
}

func (p *Packed[W]) Get(i int) (alphabet.Symbol, error) {
	if err := checkIndex(i, p.n); err != nil {
		return 0, err
	}
	return p.symbol(i), nil
}

// Iter advances a bit cursor by BitsPerSymbol per step, using the same
// extraction as Get.
func (p *Packed[W]) Iter() iter.Seq[alphabet.Symbol] {
	return func(yield func(alphabet.Symbol) bool) {
		bps := p.alpha.BitsPerSymbol()
		var cursor uint64
		for i := 0; i < p.n; i++ {
			if !yield(alphabet.Symbol(bitpack.Extract(p.words, cursor, bps))) {
				return
			}
			cursor += uint64(bps)
		}
	}
}

// All returns the index and symbol of every position.
func (p *Packed[W]) All() iter.Seq2[int, alphabet.Symbol] {
	return func(yield func(int, alphabet.Symbol) bool) {
		i := 0
		for s := range p.Iter() {
			if !yield(i, s) {
				return
			}
			i++
		}
	}
}

// Subsequence copies whole words when start falls on a word boundary and only
// masks the tail word, otherwise it re-packs symbol by symbol. Both paths
// produce identical buffers.
func (p *Packed[W]) Subsequence(start, end int) (*Packed[W], error) {
	if err := checkRange(start, end, p.n); err != nil {
		return nil, err
	}
	bps := uint64(p.alpha.BitsPerSymbol())
	if (uint64(start)*bps)%uint64(bitpack.WordBits[W]()) == 0 {
		return p.subsequenceAligned(start, end), nil
	}
	return p.subsequenceNaive(start, end), nil
}

// SubsequenceNaive is Subsequence without the word aligned fast path.
func (p *Packed[W]) SubsequenceNaive(start, end int) (*Packed[W], error) {
	if err := checkRange(start, end, p.n); err != nil {
		return nil, err
	}
	return p.subsequenceNaive(start, end), nil
}

func (p *Packed[W]) subsequenceAligned(start, end int) *Packed[W] {
	bps := p.alpha.BitsPerSymbol()
	k := uint64(end - start)
	words := make([]W, bitpack.WordsFor[W](k, bps))
	first := uint64(start) * uint64(bps) / uint64(bitpack.WordBits[W]())
	copy(words, p.words[first:])
	bitpack.ClearFrom(words, k*uint64(bps))
	return &Packed[W]{alpha: p.alpha, words: words, n: end - start}
}

func (p *Packed[W]) subsequenceNaive(start, end int) *Packed[W] {
	b := newBuilder[W](p.alpha, end-start)
	for i := start; i < end; i++ {
		b.push(p.symbol(i))
	}
	return b.packed()
}

func (p *Packed[W]) ReverseComplement() (*Packed[W], error) {
	if !p.alpha.HasComplement() {
		return nil, ErrNoComplement
	}
	b := newBuilder[W](p.alpha, p.n)
	for i := p.n - 1; i >= 0; i-- {
		b.push(p.alpha.Complement(p.symbol(i)))
	}
	return b.packed(), nil
}

// Equal compares word buffers when other is packed into the same word type,
// and symbol by symbol otherwise.
func (p *Packed[W]) Equal(other Genome) bool {
	if o, ok := other.(*Packed[W]); ok {
		return p.n == o.n && p.alpha.Same(o.alpha) && slices.Equal(p.words, o.words)
	}
	return Equal(p, other)
}

func (p *Packed[W]) Hash() uint64 { return Hash(p) }

func (p *Packed[W]) String() string {
	var sb strings.Builder
	sb.Grow(p.n)
	for s := range p.Iter() {
		sb.WriteByte(p.alpha.Decode(s))
	}
	return sb.String()
}

// SizeInMemory returns the approximate number of bytes the genome occupies.
func (p *Packed[W]) SizeInMemory() int {
	return int(unsafe.Sizeof(*p)) + cap(p.words)*bitpack.WordBytes[W]()
}
