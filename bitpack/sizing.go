package bitpack

import "math/bits"

// WordBits returns the width of W in bits.
func WordBits[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}

// WordBytes returns the width of W in bytes.
func WordBytes[W Word]() int {
	return int(WordBits[W]() / 8)
}

// CheckWidth validates width for use with buffers of W.
func CheckWidth[W Word](width uint) error {
	if width > WordBits[W]() {
		return ErrBadWidth
	}
	return nil
}

// CheckWordBits reports whether wordBits names one of the supported word types.
func CheckWordBits(wordBits uint) error {
	switch wordBits {
	case 8, 16, 32, 64:
		return nil
	}
	return ErrBadWordBits
}

// TotalBits returns count * width, or ErrSizeOverflow if the product does not
// fit a uint64.
func TotalBits(count uint64, width uint) (uint64, error) {
	hi, lo := bits.Mul64(count, uint64(width))
	if hi != 0 {
		return 0, ErrSizeOverflow
	}
	return lo, nil
}

// WordsFor returns ceil(count*width / bits(W)), the number of words needed to
// hold count codes of width bits.
//
// The caller is responsible for ensuring count*width does not overflow.
// TotalBits can be used to check this.
func WordsFor[W Word](count uint64, width uint) uint64 {
	wb := uint64(WordBits[W]())
	return (count*uint64(width) + wb - 1) / wb
}
