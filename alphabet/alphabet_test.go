package alphabet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsPerSymbol(t *testing.T) {
	tests := []struct {
		characters string
		want       uint
	}{
		{"A", 0},
		{"AC", 1},
		{"ACG", 2},
		{"ACGT", 2},
		{"ACGNT", 3},
		{"ACGTNRYS", 3},
		{"ABCDGHKMNRSTVWY", 4},
		{"ARNDCQEGHILKMFPSTWYVX", 5},
	}
	for _, tt := range tests {
		a, err := New(IDUserFirst, "t", tt.characters, "")
		require.NoError(t, err)
		assert.Equal(t, tt.want, a.BitsPerSymbol(), tt.characters)
	}
}

func TestBuiltinConversion(t *testing.T) {
	for _, a := range Builtin().All() {
		t.Run(a.Name(), func(t *testing.T) {
			chars := a.Characters()
			for c := 0; c < 256; c++ {
				s, err := a.Encode(byte(c))
				if !strings.ContainsRune(chars, rune(c)) {
					require.ErrorIs(t, err, ErrInvalidSymbol, "char %d", c)
					require.False(t, a.Contains(byte(c)))
					continue
				}
				require.NoError(t, err)
				require.True(t, a.Valid(s))
				require.Equal(t, byte(c), a.Decode(s))
			}
			for _, s := range a.Symbols() {
				got, err := a.Encode(a.Decode(s))
				require.NoError(t, err)
				require.Equal(t, s, got)
			}
			require.Len(t, a.Symbols(), a.Size())
		})
	}
}

func TestEncodeError(t *testing.T) {
	_, err := DNA.Encode('N')
	require.ErrorIs(t, err, ErrInvalidSymbol)

	var charErr *InvalidCharacterError
	require.ErrorAs(t, err, &charErr)
	require.Equal(t, byte('N'), charErr.Char)

	_, err = DNAOrN.Encode('N')
	require.NoError(t, err)
}

func TestComplement(t *testing.T) {
	complement := func(a *Alphabet, c byte) byte {
		s, err := a.Encode(c)
		require.NoError(t, err)
		return a.Decode(a.Complement(s))
	}
	require.Equal(t, byte('T'), complement(DNA, 'A'))
	require.Equal(t, byte('G'), complement(DNA, 'C'))
	require.Equal(t, byte('N'), complement(DNAOrN, 'N'))
	require.Equal(t, byte('A'), complement(RNA, 'U'))
	require.Equal(t, byte('Y'), complement(DNAIUPAC, 'R'))

	for _, a := range Builtin().All() {
		for _, s := range a.Symbols() {
			require.Equal(t, s, a.Complement(a.Complement(s)), a.Name())
		}
	}

	require.False(t, IUPACAminoAcid.HasComplement())
	require.True(t, DNA.HasComplement())
}

func TestNewRejects(t *testing.T) {
	_, err := New(IDUserFirst, "empty", "", "")
	require.ErrorIs(t, err, ErrEmpty)

	_, err = New(IDUserFirst, "dup", "ACGA", "")
	require.ErrorIs(t, err, ErrDuplicate)

	_, err = New(IDUserFirst, "big", strings.Repeat("x", MaxSize+1), "")
	require.ErrorIs(t, err, ErrTooLarge)

	_, err = New(IDUserFirst, "short", "ACGT", "TGC")
	require.ErrorIs(t, err, ErrBadComplement)

	_, err = New(IDUserFirst, "foreign", "ACGT", "TGCU")
	require.ErrorIs(t, err, ErrBadComplement)

	// A->C, C->G, G->A is a permutation but not an involution.
	_, err = New(IDUserFirst, "cycle", "ACG", "CGA")
	require.ErrorIs(t, err, ErrBadComplement)
}

func TestSame(t *testing.T) {
	other, err := New(IDDNA, "dna-copy", "ACGT", "TGCA")
	require.NoError(t, err)
	require.True(t, DNA.Same(DNA))
	require.True(t, DNA.Same(other))
	require.False(t, DNA.Same(RNA))
	require.False(t, DNA.Same(nil))
}

func TestRegistry(t *testing.T) {
	a, ok := Lookup(IDDNAOrN)
	require.True(t, ok)
	require.Same(t, DNAOrN, a)

	_, ok = Lookup(IDInvalid)
	require.False(t, ok)

	a, ok = Builtin().ByName("DNA")
	require.True(t, ok)
	require.Same(t, DNA, a)

	all := Builtin().All()
	require.Len(t, all, 8)
	for i := 1; i < len(all); i++ {
		require.Less(t, int(all[i-1].ID()), int(all[i].ID()))
	}

	custom := MustNew(IDUserFirst, "binary", "01", "10")
	r, err := NewRegistry(custom)
	require.NoError(t, err)
	a, ok = r.Lookup(IDUserFirst)
	require.True(t, ok)
	require.Same(t, custom, a)
	_, ok = r.Lookup(IDDNA)
	require.True(t, ok)

	_, err = NewRegistry(MustNew(IDDNA, "clash", "AC", ""))
	require.ErrorIs(t, err, ErrIDClash)

	_, err = NewRegistry(MustNew(IDUserFirst+1, "dna", "AC", ""))
	require.ErrorIs(t, err, ErrNameClash)
}
