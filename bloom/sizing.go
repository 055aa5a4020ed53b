package bloom

// CheckBPE validates bitsPerElement for safe sizing computations.
func CheckBPE(bitsPerElement uint64) error {
	if bitsPerElement == 0 {
		return ErrBadMBits
	}
	if bitsPerElement > uint64(^uint32(0)) {
		return ErrMBitsOverflow
	}
	return nil
}

// MBitsV1 returns bitsPerElement * expectedKmers.
//
// The caller is responsible for ensuring both are > 0 and that
// bitsPerElement <= uint64(^uint32(0)). CheckBPE can be used to check the
// latter.
func MBitsV1(expectedKmers uint64, bitsPerElement uint64) uint64 {
	return bitsPerElement * expectedKmers
}

// MBitsSafeCast returns mBits as uint32, or 0 if it is not safe to downcast.
func MBitsSafeCast(mBits64 uint64) uint32 {
	if mBits64 == 0 || mBits64 > uint64(^uint32(0)) {
		return 0
	}
	return uint32(mBits64)
}

// BitsetBytesV1 returns ceil(mBits/8).
func BitsetBytesV1(mBits uint32) uint32 {
	return uint32((uint64(mBits) + 7) / 8)
}

// RegionBytesV1 returns the byte length of a region for mBits:
//
//	HeaderBytesV1 + ceil(mBits/8)
func RegionBytesV1(mBits uint32) uint64 {
	return uint64(HeaderBytesV1) + uint64(BitsetBytesV1(mBits))
}

// KmerCount returns the number of k-mers of length k in a genome of length n.
func KmerCount(n int, k int) uint64 {
	if k <= 0 || n < k {
		return 0
	}
	return uint64(n - k + 1)
}
