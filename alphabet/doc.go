/*
Package alphabet implements the finite, bidirectional mapping between ASCII
characters and the small integer codes (symbols) genomes are stored as.

An Alphabet is an immutable value. The built-in alphabets (DNA, RNA, their
IUPAC and N-extended variants, and two protein alphabets) are constructed once
during package initialisation and are safe to share between goroutines without
synchronisation. Additional alphabets can be built with New or declared in YAML
and loaded with LoadDefinitions; a Registry collects alphabets by ID so that
persisted genomes can name their alphabet with a single byte.

Symbols are assigned in the order the characters are given, so the code of a
character is its index in Characters(). The number of bits needed per symbol
is ceil(log2(Size())), which is 0 for a single character alphabet.
*/
package alphabet
