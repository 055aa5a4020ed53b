package genome

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/forestrie/go-compactgenome/alphabet"
	"github.com/forestrie/go-compactgenome/bitpack"
)

const (
	LayoutAlphabetFirstByte = 0
	LayoutCountFirstByte    = 1
	LayoutCountEnd          = LayoutCountFirstByte + 8
	LayoutWordBitsByte      = LayoutCountEnd
	LayoutHeaderSizeV1      = LayoutWordBitsByte + 1
)

// LayoutHeaderV1 is the fixed size header that precedes the packed words.
type LayoutHeaderV1 struct {
	AlphabetID alphabet.ID
	Count      uint64
	WordBits   uint8
}

// AppendV1 appends the encoded header to dst.
func (h LayoutHeaderV1) AppendV1(dst []byte) []byte {
	dst = append(dst, byte(h.AlphabetID))
	dst = binary.LittleEndian.AppendUint64(dst, h.Count)
	return append(dst, h.WordBits)
}

// DecodeHeaderV1 reads the header at the start of data. Only the header size
// is checked, see UnmarshalPackedV1 for full validation.
func DecodeHeaderV1(data []byte) (LayoutHeaderV1, error) {
	if len(data) < LayoutHeaderSizeV1 {
		return LayoutHeaderV1{}, fmt.Errorf(
			"%w: %d bytes is shorter than the %d byte header", ErrBadLayoutSize, len(data), LayoutHeaderSizeV1)
	}
	return LayoutHeaderV1{
		AlphabetID: alphabet.ID(data[LayoutAlphabetFirstByte]),
		Count:      binary.LittleEndian.Uint64(data[LayoutCountFirstByte:LayoutCountEnd]),
		WordBits:   data[LayoutWordBitsByte],
	}, nil
}

// HeaderV1 returns the layout header describing p.
func (p *Packed[W]) HeaderV1() LayoutHeaderV1 {
	return LayoutHeaderV1{
		AlphabetID: p.alpha.ID(),
		Count:      uint64(p.n),
		WordBits:   uint8(bitpack.WordBits[W]()),
	}
}

// AppendBinary appends the V1 layout of p to b.
func (p *Packed[W]) AppendBinary(b []byte) ([]byte, error) {
	b = p.HeaderV1().AppendV1(b)
	return bitpack.AppendWordsLE(b, p.words), nil
}

// MarshalBinary returns the V1 layout of p.
func (p *Packed[W]) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(make([]byte, 0, LayoutHeaderSizeV1+len(p.words)*bitpack.WordBytes[W]()))
}

// UnmarshalBinary replaces p with the genome in data. Alphabet ids are resolved
// against the built-in alphabets. On error p is left unchanged.
func (p *Packed[W]) UnmarshalBinary(data []byte) error {
	q, err := UnmarshalPackedV1[W](data, alphabet.Builtin())
	if err != nil {
		return err
	}
	*p = *q
	return nil
}

// UnmarshalPackedV1 decodes a V1 layout whose words are exactly W.
//
// The data is fully validated: the header, the region size, the padding bits
// and every symbol code. Nothing is returned unless all checks pass. A nil reg
// means the built-in alphabets.
func UnmarshalPackedV1[W bitpack.Word](data []byte, reg *alphabet.Registry) (*Packed[W], error) {
	if reg == nil {
		reg = alphabet.Builtin()
	}
	h, err := DecodeHeaderV1(data)
	if err != nil {
		return nil, err
	}
	if uint(h.WordBits) != bitpack.WordBits[W]() {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrBadWordWidth, h.WordBits, bitpack.WordBits[W]())
	}
	a, ok := reg.Lookup(h.AlphabetID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlphabet, h.AlphabetID)
	}
	if h.Count > math.MaxInt {
		return nil, fmt.Errorf("%w: count %d", ErrBadLayoutSize, h.Count)
	}
	totalBits, err := bitpack.TotalBits(h.Count, a.BitsPerSymbol())
	if err != nil {
		return nil, fmt.Errorf("%w: count %d", ErrBadLayoutSize, h.Count)
	}

	wb := uint64(bitpack.WordBits[W]())
	nwords := totalBits / wb
	if totalBits%wb != 0 {
		nwords++
	}
	region := data[LayoutHeaderSizeV1:]
	if uint64(len(region))%uint64(bitpack.WordBytes[W]()) != 0 ||
		uint64(len(region))/uint64(bitpack.WordBytes[W]()) != nwords {
		return nil, fmt.Errorf(
			"%w: %d region bytes for %d symbols of %d bits", ErrBadLayoutSize, len(region), h.Count, a.BitsPerSymbol())
	}
	words, err := bitpack.ReadWordsLE[W](region)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLayoutSize, err)
	}
	if !bitpack.ZeroFrom(words, totalBits) {
		return nil, ErrBadPadding
	}

	p := &Packed[W]{alpha: a, words: words, n: int(h.Count)}
	if 1<<a.BitsPerSymbol() != a.Size() {
		for i, s := range p.All() {
			if !a.Valid(s) {
				return nil, fmt.Errorf("%w: code %d at index %d", ErrSymbolOutOfRange, s, i)
			}
		}
	}
	return p, nil
}

// UnmarshalV1 decodes a V1 layout of any supported word width.
func UnmarshalV1(data []byte, reg *alphabet.Registry) (Genome, error) {
	h, err := DecodeHeaderV1(data)
	if err != nil {
		return nil, err
	}
	switch h.WordBits {
	case 8:
		return unmarshalGenome[uint8](data, reg)
	case 16:
		return unmarshalGenome[uint16](data, reg)
	case 32:
		return unmarshalGenome[uint32](data, reg)
	case 64:
		return unmarshalGenome[uint64](data, reg)
	}
	return nil, fmt.Errorf("%w: %d", ErrBadWordWidth, h.WordBits)
}

// unmarshalGenome keeps a failed decode from becoming a non nil Genome holding
// a nil pointer.
func unmarshalGenome[W bitpack.Word](data []byte, reg *alphabet.Registry) (Genome, error) {
	p, err := UnmarshalPackedV1[W](data, reg)
	if err != nil {
		return nil, err
	}
	return p, nil
}
