package bloom

import (
	"bytes"
	"encoding/binary"
)

// DecodeHeaderV1 decodes a V1 header from region.
//
// ok=false indicates the region is zero-filled / uninitialized.
func DecodeHeaderV1(region []byte) (h HeaderV1, ok bool, err error) {
	if len(region) < HeaderBytesV1 {
		return HeaderV1{}, false, ErrBadRegionSize
	}

	if bytes.Equal(region[0:4], []byte{0, 0, 0, 0}) {
		return HeaderV1{}, false, nil
	}

	if string(region[0:4]) != MagicV1 {
		return HeaderV1{}, false, ErrBadMagic
	}
	if region[4] != VersionV1 {
		return HeaderV1{}, false, ErrBadVersion
	}

	h.BitOrder = region[5]
	h.Hashes = region[6]
	h.KmerLen = region[7]
	h.Flags = region[8]
	h.AlphabetID = region[9]
	h.MBits = binary.BigEndian.Uint32(region[12:16])
	h.NInserted = binary.BigEndian.Uint64(region[16:24])

	if err := h.check(); err != nil {
		return HeaderV1{}, false, err
	}
	return h, true, nil
}

// EncodeHeaderV1 writes a V1 header into region.
func EncodeHeaderV1(region []byte, h HeaderV1) error {
	if len(region) < HeaderBytesV1 {
		return ErrBadRegionSize
	}
	if err := h.check(); err != nil {
		return err
	}

	copy(region[0:4], []byte(MagicV1))
	region[4] = VersionV1
	region[5] = h.BitOrder
	region[6] = h.Hashes
	region[7] = h.KmerLen
	region[8] = h.Flags
	region[9] = h.AlphabetID
	clear(region[10:12])
	binary.BigEndian.PutUint32(region[12:16], h.MBits)
	binary.BigEndian.PutUint64(region[16:24], h.NInserted)
	clear(region[24:HeaderBytesV1])
	return nil
}

func (h HeaderV1) check() error {
	if h.BitOrder != BitOrderLSB0 {
		return ErrBadBitOrder
	}
	if h.Hashes == 0 {
		return ErrBadHashes
	}
	if h.KmerLen == 0 || h.KmerLen > MaxKmerLen {
		return ErrBadKmerLen
	}
	if h.MBits == 0 {
		return ErrBadMBits
	}
	return nil
}
