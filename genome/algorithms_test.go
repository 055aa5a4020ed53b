package genome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-compactgenome/alphabet"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		text           string
		canonical      bool
		selfComplement bool
	}{
		{"", true, true},
		{"ATTCGGT", false, false},
		{"ACCGAAT", true, false},
		{"ATAT", true, true},
		{"CGTA", true, false},
		{"TACG", false, false},
		{"GC", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ascii, err := NewAscii(alphabet.DNA, tt.text)
			require.NoError(t, err)
			packed, err := NewPacked[uint8](alphabet.DNA, tt.text)
			require.NoError(t, err)

			for _, g := range []Genome{ascii, packed} {
				c, err := IsCanonical(g)
				require.NoError(t, err)
				assert.Equal(t, tt.canonical, c)

				s, err := IsSelfComplemental(g)
				require.NoError(t, err)
				assert.Equal(t, tt.selfComplement, s)
			}
		})
	}

	p, err := NewBitPacked(alphabet.IUPACAminoAcid, "ARN")
	require.NoError(t, err)
	_, err = IsCanonical(p)
	require.ErrorIs(t, err, ErrNoComplement)
	_, err = IsSelfComplemental(p)
	require.ErrorIs(t, err, ErrNoComplement)
	_, err = ReverseComplementIter(p)
	require.ErrorIs(t, err, ErrNoComplement)
}

func TestReverseComplementIter(t *testing.T) {
	g, err := NewBitPacked(alphabet.DNA, "ATTCGGT")
	require.NoError(t, err)
	rc, err := ReverseComplementIter(g)
	require.NoError(t, err)

	collected, err := CollectAscii(alphabet.DNA, rc)
	require.NoError(t, err)
	assert.Equal(t, "ACCGAAT", collected.String())

	// independent iterations
	again, err := Collect[uint16](alphabet.DNA, rc)
	require.NoError(t, err)
	assert.True(t, again.Equal(collected))
}

func TestKmers(t *testing.T) {
	g, err := NewBitPacked(alphabet.DNA, "ACGTA")
	require.NoError(t, err)

	var starts []int
	var kmers []string
	for i, k := range Kmers(g, 3) {
		starts = append(starts, i)
		kmers = append(kmers, k.String())
		requirePadding(t, k)
	}
	assert.Equal(t, []int{0, 1, 2}, starts)
	assert.Equal(t, []string{"ACG", "CGT", "GTA"}, kmers)

	a, err := NewAscii(alphabet.DNA, "ACGTA")
	require.NoError(t, err)
	n := 0
	for range Kmers(a, 0) {
		n++
	}
	for range Kmers(a, 6) {
		n++
	}
	assert.Equal(t, 0, n)

	for range Kmers(a, 1) {
		n++
		break
	}
	assert.Equal(t, 1, n)

	whole := 0
	for _, k := range Kmers(a, 5) {
		assert.True(t, k.Equal(g))
		whole++
	}
	assert.Equal(t, 1, whole)
}

func TestCompare(t *testing.T) {
	mk := func(text string) Genome {
		g, err := NewBitPacked(alphabet.DNA, text)
		require.NoError(t, err)
		return g
	}
	assert.Equal(t, 0, Compare(mk("ACGT"), mk("ACGT")))
	assert.Equal(t, -1, Compare(mk("ACG"), mk("ACGT")))
	assert.Equal(t, 1, Compare(mk("ACT"), mk("ACGT")))
	assert.Equal(t, -1, Compare(mk(""), mk("A")))

	ascii, err := NewAscii(alphabet.DNA, "ACGA")
	require.NoError(t, err)
	assert.Equal(t, -1, Compare(ascii, mk("ACGT")))
}
