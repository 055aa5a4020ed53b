package bitpack

import "encoding/binary"

// AppendWordsLE appends words to dst, each word little endian.
func AppendWordsLE[W Word](dst []byte, words []W) []byte {
	switch WordBits[W]() {
	case 8:
		for _, w := range words {
			dst = append(dst, byte(w))
		}
	case 16:
		for _, w := range words {
			dst = binary.LittleEndian.AppendUint16(dst, uint16(w))
		}
	case 32:
		for _, w := range words {
			dst = binary.LittleEndian.AppendUint32(dst, uint32(w))
		}
	default:
		for _, w := range words {
			dst = binary.LittleEndian.AppendUint64(dst, uint64(w))
		}
	}
	return dst
}

// ReadWordsLE decodes a region of little endian words.
func ReadWordsLE[W Word](region []byte) ([]W, error) {
	n := WordBytes[W]()
	if len(region)%n != 0 {
		return nil, ErrBadRegion
	}
	words := make([]W, len(region)/n)
	for i := range words {
		b := region[i*n : i*n+n]
		switch n {
		case 1:
			words[i] = W(b[0])
		case 2:
			words[i] = W(binary.LittleEndian.Uint16(b))
		case 4:
			words[i] = W(binary.LittleEndian.Uint32(b))
		default:
			words[i] = W(binary.LittleEndian.Uint64(b))
		}
	}
	return words, nil
}
