package bloom

import (
	"bytes"

	"github.com/cespare/xxhash/v2"

	"github.com/forestrie/go-compactgenome/alphabet"
	"github.com/forestrie/go-compactgenome/bitpack"
	"github.com/forestrie/go-compactgenome/genome"
)

const (
	domainH1V1 = 0xB0
	domainH2V1 = 0xB1
)

// ParamsV1 sizes and configures a new filter.
type ParamsV1 struct {
	KmerLen        uint8
	ExpectedKmers  uint64
	BitsPerElement uint64
	Hashes         uint8
	Canonical      bool
}

// MBits returns the bitset size the parameters call for, or 0 if it does not
// fit the header.
func (p ParamsV1) MBits() uint32 {
	if p.ExpectedKmers == 0 || CheckBPE(p.BitsPerElement) != nil {
		return 0
	}
	return MBitsSafeCast(MBitsV1(p.ExpectedKmers, p.BitsPerElement))
}

// InitV1 initializes region as an empty filter for k-mers over a.
//
// The caller must allocate region with at least RegionBytesV1(p.MBits()).
func InitV1(region []byte, a *alphabet.Alphabet, p ParamsV1) error {
	if p.ExpectedKmers == 0 {
		return ErrBadMBits
	}
	if err := CheckBPE(p.BitsPerElement); err != nil {
		return err
	}
	mBits := p.MBits()
	if mBits == 0 {
		return ErrMBitsOverflow
	}
	need := RegionBytesV1(mBits)
	if uint64(len(region)) < need {
		return ErrBadRegionSize
	}

	// Ensure clean initialization even if region is reused.
	clear(region[:need])

	var flags uint8
	if p.Canonical {
		flags |= FlagCanonical
	}
	return EncodeHeaderV1(region, HeaderV1{
		BitOrder:   BitOrderLSB0,
		Hashes:     p.Hashes,
		KmerLen:    p.KmerLen,
		Flags:      flags,
		AlphabetID: uint8(a.ID()),
		MBits:      mBits,
	})
}

// NewV1 allocates and initializes a filter region.
func NewV1(a *alphabet.Alphabet, p ParamsV1) ([]byte, error) {
	mBits := p.MBits()
	if mBits == 0 {
		return nil, ErrBadMBits
	}
	region := make([]byte, RegionBytesV1(mBits))
	if err := InitV1(region, a, p); err != nil {
		return nil, err
	}
	return region, nil
}

// AddGenomeV1 inserts every k-mer of g and returns how many were inserted. A
// genome shorter than the k-mer length inserts nothing.
func AddGenomeV1(region []byte, g genome.Genome) (uint64, error) {
	h, bitset, err := checkedRegionV1(region, g.Alphabet())
	if err != nil {
		return 0, err
	}

	symbols := symbolCodes(g)
	k := int(h.KmerLen)
	var n uint64
	var scratch [MaxKmerLen]byte
	for start := 0; start+k <= len(symbols); start++ {
		key := kmerKeyV1(symbols[start:start+k], g.Alphabet(), h.Canonical(), scratch[:k])
		h1, h2 := hashPairV1(key)
		setBitsLSB0(bitset, uint64(h.MBits), h.Hashes, h1, h2)
		n++
	}

	h.NInserted += n
	return n, EncodeHeaderV1(region, h)
}

// MaybeContainsV1 checks membership for a single k-mer.
//
// Returns (false,nil) if the filter says "definitely not present".
// Returns (true,nil) if the filter says "maybe present".
func MaybeContainsV1(region []byte, kmer genome.Genome) (bool, error) {
	h, bitset, err := checkedRegionV1(region, kmer.Alphabet())
	if err != nil {
		return false, err
	}
	if kmer.Len() != int(h.KmerLen) {
		return false, ErrBadKmerLen
	}
	var scratch [MaxKmerLen]byte
	key := kmerKeyV1(symbolCodes(kmer), kmer.Alphabet(), h.Canonical(), scratch[:h.KmerLen])
	h1, h2 := hashPairV1(key)
	return testBitsLSB0(bitset, uint64(h.MBits), h.Hashes, h1, h2), nil
}

// MaybeContainsAllV1 reports whether every k-mer of g may be present. A
// genome shorter than the k-mer length is rejected with ErrBadKmerLen.
func MaybeContainsAllV1(region []byte, g genome.Genome) (bool, error) {
	h, bitset, err := checkedRegionV1(region, g.Alphabet())
	if err != nil {
		return false, err
	}
	k := int(h.KmerLen)
	if g.Len() < k {
		return false, ErrBadKmerLen
	}
	symbols := symbolCodes(g)
	var scratch [MaxKmerLen]byte
	for start := 0; start+k <= len(symbols); start++ {
		key := kmerKeyV1(symbols[start:start+k], g.Alphabet(), h.Canonical(), scratch[:k])
		h1, h2 := hashPairV1(key)
		if !testBitsLSB0(bitset, uint64(h.MBits), h.Hashes, h1, h2) {
			return false, nil
		}
	}
	return true, nil
}

func checkedRegionV1(region []byte, a *alphabet.Alphabet) (HeaderV1, []byte, error) {
	h, ok, err := DecodeHeaderV1(region)
	if err != nil {
		return HeaderV1{}, nil, err
	}
	if !ok {
		return HeaderV1{}, nil, ErrNotInitialized
	}
	if a.ID() != alphabet.ID(h.AlphabetID) {
		return HeaderV1{}, nil, ErrWrongAlphabet
	}
	end := RegionBytesV1(h.MBits)
	if uint64(len(region)) < end {
		return HeaderV1{}, nil, ErrBadRegionSize
	}
	return h, region[HeaderBytesV1:end], nil
}

func symbolCodes(g genome.Genome) []byte {
	codes := make([]byte, 0, g.Len())
	for s := range g.Iter() {
		codes = append(codes, byte(s))
	}
	return codes
}

// kmerKeyV1 returns the symbols that are hashed for kmer. For canonical
// filters over complemented alphabets that is the smaller of kmer and its
// reverse complement, built in scratch.
func kmerKeyV1(kmer []byte, a *alphabet.Alphabet, canonical bool, scratch []byte) []byte {
	if !canonical || !a.HasComplement() {
		return kmer
	}
	k := len(kmer)
	for i, s := range kmer {
		scratch[k-1-i] = byte(a.Complement(alphabet.Symbol(s)))
	}
	if bytes.Compare(scratch, kmer) < 0 {
		return scratch
	}
	return kmer
}

func hashPairV1(key []byte) (h1 uint64, h2 uint64) {
	// xxhash( domain || key ) for two domains
	var buf [1 + MaxKmerLen]byte
	copy(buf[1:], key)
	buf[0] = domainH1V1
	h1 = xxhash.Sum64(buf[:1+len(key)])
	buf[0] = domainH2V1
	h2 = xxhash.Sum64(buf[:1+len(key)])
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}

func setBitsLSB0(bitset []byte, mBits uint64, hashes uint8, h1, h2 uint64) {
	for i := uint64(0); i < uint64(hashes); i++ {
		bitpack.Insert(bitset, (h1+i*h2)%mBits, 1, 1)
	}
}

func testBitsLSB0(bitset []byte, mBits uint64, hashes uint8, h1, h2 uint64) bool {
	for i := uint64(0); i < uint64(hashes); i++ {
		if bitpack.Extract(bitset, (h1+i*h2)%mBits, 1) == 0 {
			return false
		}
	}
	return true
}
