package genome

/*

# Genomes over small alphabets

A genome is an immutable, fixed length sequence of alphabet symbols. This
package provides two concrete representations behind one capability interface:

- Ascii stores one byte (the ASCII character) per symbol. It is the simple
  reference representation and the oracle for testing the packed one.
- Packed[W] stores each symbol in alphabet.BitsPerSymbol() bits, contiguously,
  inside a buffer of W words (uint8, uint16, uint32 or uint64). BitPacked is
  Packed[uint64].

Algorithms are written once against Genome (read access) or Sequence[S]
(read access plus operations that return the caller's own concrete type) and
run over either representation.

## Immutability

Nothing in this package mutates a genome after construction. Slicing,
reverse complementing and converting all return new, owned values. Genomes may
therefore be shared between goroutines without synchronisation.

Construction is atomic: a constructor either returns a complete genome or an
error, never a partially filled value.

## Equality

Two genomes are equal when they use the same alphabet, have the same length and
hold the same symbol at every index, regardless of representation. Packed
genomes of the same word type compare their word buffers directly; this is valid
only because the bits after the last symbol are always zero.

## Persisted layout (V1)

Packed genomes marshal to

	+-------------+---------------------+-------------+----------------------+
	| alphabet id | symbol count        | word bits   | words ...            |
	| 1 byte      | 8 bytes, LE uint64  | 1 byte      | LE, word bits/8 each |
	+-------------+---------------------+-------------+----------------------+

The symbol count is exact, padding bits are never counted. The number of
words is ceil(count * bitsPerSymbol / wordBits) and the padding bits of the
last word are zero. The alphabet id is an alphabet.ID resolved through an
alphabet.Registry.

*/
