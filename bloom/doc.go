package bloom

/*

# k-mer presence filters

This package provides a Bloom filter over the k-mers of genomes, stored in a
caller allocated byte region. It answers "could this k-mer occur in any of
the genomes added so far" without keeping the genomes.

- If the filter says "definitely not present", no added genome contains the
  k-mer.
- If the filter says "maybe present", it may or may not (false positives are
  possible).

## Region layout

	+----------------------+  32B header (magic, version, params)
	| HeaderV1             |
	+----------------------+  ceil(mBits/8) bytes
	| bitset               |
	+----------------------+

The header records the alphabet id and the k-mer length. A filter only
accepts genomes over that alphabet.

## Canonical k-mers

When the header's canonical flag is set and the alphabet defines a
complement, a k-mer and its reverse complement index the same bits: the
smaller of the two, by symbol code, is the one hashed. A filter built from one
strand then answers for both.

## Indexing and bit numbering

Double hashing over the k-mer's symbol codes: h1 and h2 are two domain
separated xxhash sums and the i'th probe is (h1 + i*h2) mod mBits. Bit j of
the bitset is bit j%8 of byte j/8 (LSB0, as in package bitpack).

Functions carry a V1 suffix: they implement format version 1 of the header,
hashing and bit numbering.

*/
