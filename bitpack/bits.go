package bitpack

// mask returns a value with the low width bits set.
func mask(width uint) uint64 {
	if width == 0 {
		return 0
	}
	return ^uint64(0) >> (64 - width)
}

// Extract returns the width bit code stored at bit offset of buf.
//
// No range checks are performed. The caller must ensure width <= bits(W) and
// that offset+width does not run past the end of buf; out of range will panic.
func Extract[W Word](buf []W, offset uint64, width uint) uint64 {
	if width == 0 {
		return 0
	}
	wb := uint64(WordBits[W]())
	wi := offset / wb
	bo := uint(offset % wb)

	if uint64(bo)+uint64(width) <= wb {
		return (uint64(buf[wi]) >> bo) & mask(width)
	}

	// The code straddles buf[wi] and buf[wi+1]. The low lowN bits are the top
	// of buf[wi], the remainder is the bottom of buf[wi+1].
	lowN := uint(wb) - bo
	low := uint64(buf[wi]) >> bo
	high := uint64(buf[wi+1]) & mask(width-lowN)
	return low | high<<lowN
}

// Insert writes the low width bits of value at bit offset of buf. The
// destination span is cleared first, so Insert may overwrite a previous code.
// Bits outside [offset, offset+width) are left untouched.
//
// No range checks are performed, see Extract.
func Insert[W Word](buf []W, offset uint64, width uint, value uint64) {
	if width == 0 {
		return
	}
	value &= mask(width)
	wb := uint64(WordBits[W]())
	wi := offset / wb
	bo := uint(offset % wb)

	if uint64(bo)+uint64(width) <= wb {
		m := W(mask(width) << bo)
		buf[wi] = buf[wi]&^m | W(value<<bo)
		return
	}

	lowN := uint(wb) - bo
	buf[wi] = buf[wi]&^W(mask(lowN)<<bo) | W(value<<bo)

	highN := width - lowN
	buf[wi+1] = buf[wi+1]&^W(mask(highN)) | W(value>>lowN)
}

// ClearFrom zeroes every bit of buf at or beyond bit offset from.
func ClearFrom[W Word](buf []W, from uint64) {
	wb := uint64(WordBits[W]())
	wi := from / wb
	if wi >= uint64(len(buf)) {
		return
	}
	buf[wi] &= W(mask(uint(from % wb)))
	clear(buf[wi+1:])
}

// ZeroFrom reports whether every bit of buf at or beyond bit offset from is
// zero.
func ZeroFrom[W Word](buf []W, from uint64) bool {
	wb := uint64(WordBits[W]())
	wi := from / wb
	if wi >= uint64(len(buf)) {
		return true
	}
	if buf[wi]&^W(mask(uint(from%wb))) != 0 {
		return false
	}
	for _, w := range buf[wi+1:] {
		if w != 0 {
			return false
		}
	}
	return true
}
