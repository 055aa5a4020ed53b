package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-compactgenome/alphabet"
	"github.com/forestrie/go-compactgenome/genome"
	"github.com/forestrie/go-compactgenome/genometesting"
)

func mustPacked(t *testing.T, a *alphabet.Alphabet, text string) *genome.BitPacked {
	t.Helper()
	g, err := genome.NewBitPacked(a, text)
	require.NoError(t, err)
	return g
}

func TestBloomV1AddAndQuery(t *testing.T) {
	tc := genometesting.NewTestContext(t, genometesting.TestConfig{Seed: 4, TestLabelPrefix: "TestBloomV1AddAndQuery"})
	text := tc.RandomText(alphabet.DNA, 500)
	g := mustPacked(t, alphabet.DNA, text)

	params := ParamsV1{KmerLen: 12, ExpectedKmers: KmerCount(g.Len(), 12), BitsPerElement: 10, Hashes: 7}
	region, err := NewV1(alphabet.DNA, params)
	require.NoError(t, err)

	h, ok, err := DecodeHeaderV1(region)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, BitOrderLSB0, h.BitOrder)
	require.Equal(t, uint8(12), h.KmerLen)
	require.Equal(t, uint8(alphabet.IDDNA), h.AlphabetID)
	require.False(t, h.Canonical())
	require.Equal(t, uint64(0), h.NInserted)

	// Empty filters are definitely-not-present for any k-mer.
	ok, err = MaybeContainsV1(region, mustPacked(t, alphabet.DNA, text[:12]))
	require.NoError(t, err)
	require.False(t, ok)

	n, err := AddGenomeV1(region, g)
	require.NoError(t, err)
	require.Equal(t, uint64(489), n)

	for start := 0; start+12 <= len(text); start++ {
		ok, err := MaybeContainsV1(region, mustPacked(t, alphabet.DNA, text[start:start+12]))
		require.NoError(t, err)
		require.True(t, ok, "k-mer at %d", start)
	}
	ok, err = MaybeContainsAllV1(region, g)
	require.NoError(t, err)
	require.True(t, ok)

	// With 10 bits per element false positives are rare; a few random
	// k-mers must come back absent.
	absent := 0
	for range 100 {
		ok, err := MaybeContainsV1(region, mustPacked(t, alphabet.DNA, tc.RandomText(alphabet.DNA, 12)))
		require.NoError(t, err)
		if !ok {
			absent++
		}
	}
	require.Greater(t, absent, 80)

	h, _, err = DecodeHeaderV1(region)
	require.NoError(t, err)
	require.Equal(t, uint64(489), h.NInserted)
}

func TestBloomV1Canonical(t *testing.T) {
	params := ParamsV1{KmerLen: 5, ExpectedKmers: 64, BitsPerElement: 16, Hashes: 5, Canonical: true}
	region, err := NewV1(alphabet.DNA, params)
	require.NoError(t, err)

	_, err = AddGenomeV1(region, mustPacked(t, alphabet.DNA, "ATTCGGTCA"))
	require.NoError(t, err)

	// reverse complement of the whole genome, every k-mer of it is the
	// reverse complement of one that was added
	ok, err := MaybeContainsAllV1(region, mustPacked(t, alphabet.DNA, "TGACCGAAT"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = MaybeContainsV1(region, mustPacked(t, alphabet.DNA, "CGAAT"))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBloomV1GenomeShorterThanK(t *testing.T) {
	region, err := NewV1(alphabet.DNA, ParamsV1{KmerLen: 8, ExpectedKmers: 8, BitsPerElement: 8, Hashes: 3})
	require.NoError(t, err)

	n, err := AddGenomeV1(region, mustPacked(t, alphabet.DNA, "ACGT"))
	require.NoError(t, err)
	require.Equal(t, uint64(0), n)

	_, err = MaybeContainsAllV1(region, mustPacked(t, alphabet.DNA, "ACGT"))
	require.ErrorIs(t, err, ErrBadKmerLen)
}

func TestBloomV1RejectsBadInputs(t *testing.T) {
	params := ParamsV1{KmerLen: 4, ExpectedKmers: 8, BitsPerElement: 8, Hashes: 5}
	region, err := NewV1(alphabet.DNA, params)
	require.NoError(t, err)

	// Wrong k-mer length.
	_, err = MaybeContainsV1(region, mustPacked(t, alphabet.DNA, "ACG"))
	require.ErrorIs(t, err, ErrBadKmerLen)

	// Wrong alphabet.
	_, err = AddGenomeV1(region, mustPacked(t, alphabet.RNA, "ACGUACGU"))
	require.ErrorIs(t, err, ErrWrongAlphabet)
	_, err = MaybeContainsV1(region, mustPacked(t, alphabet.RNA, "ACGU"))
	require.ErrorIs(t, err, ErrWrongAlphabet)

	// Truncated region.
	_, err = MaybeContainsV1(region[:len(region)-1], mustPacked(t, alphabet.DNA, "ACGT"))
	require.ErrorIs(t, err, ErrBadRegionSize)

	// Bad params.
	_, err = NewV1(alphabet.DNA, ParamsV1{KmerLen: 4, ExpectedKmers: 8, BitsPerElement: 8})
	require.ErrorIs(t, err, ErrBadHashes)
	_, err = NewV1(alphabet.DNA, ParamsV1{KmerLen: MaxKmerLen + 1, ExpectedKmers: 8, BitsPerElement: 8, Hashes: 1})
	require.ErrorIs(t, err, ErrBadKmerLen)
	_, err = NewV1(alphabet.DNA, ParamsV1{KmerLen: 4, BitsPerElement: 8, Hashes: 1})
	require.ErrorIs(t, err, ErrBadMBits)
	require.ErrorIs(t, InitV1(make([]byte, HeaderBytesV1), alphabet.DNA, params), ErrBadRegionSize)

	// Corrupted header.
	bad := append([]byte(nil), region...)
	bad[4] = 2
	_, _, err = DecodeHeaderV1(bad)
	require.ErrorIs(t, err, ErrBadVersion)
	bad[0] = 'X'
	_, _, err = DecodeHeaderV1(bad)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestBloomV1RejectsUninitializedRegion(t *testing.T) {
	region := make([]byte, RegionBytesV1(64)) // remains all-zero

	_, err := MaybeContainsV1(region, mustPacked(t, alphabet.DNA, "ACGT"))
	require.ErrorIs(t, err, ErrNotInitialized)

	_, err = AddGenomeV1(region, mustPacked(t, alphabet.DNA, "ACGT"))
	require.ErrorIs(t, err, ErrNotInitialized)
}
