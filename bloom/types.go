package bloom

import "errors"

const (
	// HeaderBytesV1 is the fixed header size for HeaderV1.
	HeaderBytesV1 = 32

	MagicV1         = "KMB1"
	VersionV1 uint8 = 1

	// BitOrderLSB0 means bit 0 is the least-significant bit of byte 0.
	BitOrderLSB0 uint8 = 0

	// MaxKmerLen bounds the k-mer length so that a k-mer's symbols fit a
	// fixed stack buffer.
	MaxKmerLen = 64

	// FlagCanonical makes a k-mer and its reverse complement equivalent.
	FlagCanonical uint8 = 1 << 0
)

var (
	ErrBadRegionSize  = errors.New("bloom: region buffer too small")
	ErrNotInitialized = errors.New("bloom: header not initialized")
	ErrBadKmerLen     = errors.New("bloom: k-mer length does not match the filter")
	ErrWrongAlphabet  = errors.New("bloom: genome alphabet does not match the filter")

	ErrBadMagic    = errors.New("bloom: header magic invalid")
	ErrBadVersion  = errors.New("bloom: header version invalid")
	ErrBadBitOrder = errors.New("bloom: header bitOrder unsupported")
	ErrBadHashes   = errors.New("bloom: header hashes invalid")
	ErrBadMBits    = errors.New("bloom: header mBits invalid")

	ErrMBitsOverflow = errors.New("bloom: mBits overflows supported range")
)

type HeaderV1 struct {
	BitOrder   uint8
	Hashes     uint8
	KmerLen    uint8
	Flags      uint8
	AlphabetID uint8
	MBits      uint32
	NInserted  uint64
}

func (h HeaderV1) Canonical() bool { return h.Flags&FlagCanonical != 0 }
