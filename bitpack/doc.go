package bitpack

/*

# Bit-packing primitives for compact genomes

This package provides the primitive building blocks used to store fixed width
codes contiguously inside a buffer of machine words.

It mirrors the style of the rest of the module:

- small, composable functions
- explicit bit layouts
- index arithmetic on word slices
- a burden of knowledge on the caller for hot paths

## Bit numbering

Bits are numbered LSB0 across the whole buffer: bit 0 is the least significant
bit of word 0, bit W is the least significant bit of word 1, and so on, where W
is the width of the word type in bits.

A code of `width` bits stored at bit offset `o` occupies the bits
`[o, o+width)`. When `o % W + width > W` the code straddles two adjacent words:
its low order bits live at the top of word `o / W` and its high order bits at
the bottom of word `o/W + 1`.

	 word 0 (W=8)          word 1
	+-------------------+-------------------+
	| 7 6 5 4 3 2 1 0   | 7 6 5 4 3 2 1 0   |
	+-------------------+-------------------+
	  ^ ^                             ^
	  | |                             |
	  low bits of a 3 bit code at offset 6, high bit in word 1

## Word types

All functions are generic over Word, the unsigned integer types of 8, 16, 32
and 64 bits. Widths must satisfy 0 <= width <= bits(W); a width of zero reads
as 0 and writes nothing, which lets single symbol alphabets occupy no storage.

## Padding

Callers that store `n` codes of `width` bits own `ceil(n*width/W)` words. The
bits from `n*width` to the end of the last word are padding. ClearFrom and
ZeroFrom maintain and check the convention that padding is always zero, which
is what makes whole word comparison of two buffers a valid equality test.

*/
