package bitpack

import "errors"

// Word is the set of storage word types a packed buffer may use.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

const (
	// MaxWordBits is the width of the widest supported word.
	MaxWordBits = 64

	// BitOrderLSB0 means bit 0 is the least-significant bit of word 0.
	BitOrderLSB0 uint8 = 0
)

var (
	ErrBadWidth     = errors.New("bitpack: width exceeds the word width")
	ErrBadWordBits  = errors.New("bitpack: unsupported word width")
	ErrBadRegion    = errors.New("bitpack: byte region does not hold a whole number of words")
	ErrSizeOverflow = errors.New("bitpack: size computation overflow")
)
