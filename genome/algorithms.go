package genome

import (
	"iter"

	"github.com/forestrie/go-compactgenome/alphabet"
)

// ReverseComplementIter returns the reverse complement of g as a symbol
// sequence without materialising it.
func ReverseComplementIter(g Genome) (iter.Seq[alphabet.Symbol], error) {
	a := g.Alphabet()
	if !a.HasComplement() {
		return nil, ErrNoComplement
	}
	return func(yield func(alphabet.Symbol) bool) {
		for i := g.Len() - 1; i >= 0; i-- {
			if !yield(a.Complement(at(g, i))) {
				return
			}
		}
	}, nil
}

// IsCanonical reports whether g orders at or before its reverse complement.
func IsCanonical(g Genome) (bool, error) {
	rc, err := ReverseComplementIter(g)
	if err != nil {
		return false, err
	}
	// g and its reverse complement have the same length, so the first
	// difference decides.
	i := 0
	for r := range rc {
		s := at(g, i)
		if s != r {
			return s < r, nil
		}
		i++
	}
	return true, nil
}

// IsSelfComplemental reports whether g equals its reverse complement.
func IsSelfComplemental(g Genome) (bool, error) {
	rc, err := ReverseComplementIter(g)
	if err != nil {
		return false, err
	}
	i := 0
	for r := range rc {
		if at(g, i) != r {
			return false, nil
		}
		i++
	}
	return true, nil
}

// Kmers yields every subsequence of length k together with its start index.
// Nothing is yielded when k is not in [1, g.Len()].
func Kmers[S Sequence[S]](g S, k int) iter.Seq2[int, S] {
	return func(yield func(int, S) bool) {
		if k <= 0 {
			return
		}
		for start := 0; start+k <= g.Len(); start++ {
			kmer, err := g.Subsequence(start, start+k)
			if err != nil {
				return
			}
			if !yield(start, kmer) {
				return
			}
		}
	}
}
