// Package codec carries packed genomes as CBOR records.
//
// A Record holds the fields of the persisted V1 layout as separate CBOR map
// entries, so that other tools can read a genome without knowing the binary
// header. Encoding is deterministic (RFC 8949 core deterministic encoding):
// equal genomes always encode to identical bytes.
package codec

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/forestrie/go-compactgenome/alphabet"
	"github.com/forestrie/go-compactgenome/genome"
)

var (
	ErrNilRegistry = errors.New("codec: a registry is required")
)

// Record is the interchange form of a packed genome. Words holds the packed
// words exactly as they follow the V1 header: little endian, WordBits/8 bytes
// each.
type Record struct {
	AlphabetID uint8  `cbor:"1,keyasint"`
	Count      uint64 `cbor:"2,keyasint"`
	WordBits   uint8  `cbor:"3,keyasint"`
	Words      []byte `cbor:"4,keyasint"`
}

// NewRecord splits the V1 layout of g into a Record. Genomes that are not
// already packed are packed into 64 bit words first.
func NewRecord(g genome.Genome) (Record, error) {
	data, err := marshalLayout(g)
	if err != nil {
		return Record{}, err
	}
	h, err := genome.DecodeHeaderV1(data)
	if err != nil {
		return Record{}, err
	}
	return Record{
		AlphabetID: uint8(h.AlphabetID),
		Count:      h.Count,
		WordBits:   h.WordBits,
		Words:      data[genome.LayoutHeaderSizeV1:],
	}, nil
}

func marshalLayout(g genome.Genome) ([]byte, error) {
	switch p := g.(type) {
	case *genome.Packed[uint8]:
		return p.MarshalBinary()
	case *genome.Packed[uint16]:
		return p.MarshalBinary()
	case *genome.Packed[uint32]:
		return p.MarshalBinary()
	case *genome.Packed[uint64]:
		return p.MarshalBinary()
	}
	return genome.ToBitPacked(g).MarshalBinary()
}

// LayoutV1 reassembles the persisted V1 layout of r.
func (r Record) LayoutV1() []byte {
	h := genome.LayoutHeaderV1{
		AlphabetID: alphabet.ID(r.AlphabetID),
		Count:      r.Count,
		WordBits:   r.WordBits,
	}
	data := make([]byte, 0, genome.LayoutHeaderSizeV1+len(r.Words))
	return append(h.AppendV1(data), r.Words...)
}

// Genome decodes and fully validates the genome r describes.
func (r Record) Genome(reg *alphabet.Registry) (genome.Genome, error) {
	return genome.UnmarshalV1(r.LayoutV1(), reg)
}

type CBORCodec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
	reg     *alphabet.Registry
}

// NewCBORCodec returns a codec that resolves alphabet ids against reg.
func NewCBORCodec(reg *alphabet.Registry) (CBORCodec, error) {
	if reg == nil {
		return CBORCodec{}, ErrNilRegistry
	}
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return CBORCodec{}, err
	}
	decMode, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return CBORCodec{}, err
	}
	return CBORCodec{encMode: encMode, decMode: decMode, reg: reg}, nil
}

func (c CBORCodec) Registry() *alphabet.Registry { return c.reg }

func (c CBORCodec) Marshal(v any) ([]byte, error) {
	return c.encMode.Marshal(v)
}

func (c CBORCodec) Unmarshal(data []byte, v any) error {
	return c.decMode.Unmarshal(data, v)
}

// MarshalGenome encodes g as a CBOR Record.
func (c CBORCodec) MarshalGenome(g genome.Genome) ([]byte, error) {
	r, err := NewRecord(g)
	if err != nil {
		return nil, err
	}
	return c.Marshal(r)
}

// UnmarshalGenome decodes a CBOR Record. The concrete type of the result
// follows the record's word width.
func (c CBORCodec) UnmarshalGenome(data []byte) (genome.Genome, error) {
	var r Record
	if err := c.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("codec: decoding record: %w", err)
	}
	return r.Genome(c.reg)
}
