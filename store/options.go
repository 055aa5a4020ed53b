package store

import (
	"github.com/forestrie/go-compactgenome/alphabet"
	"github.com/forestrie/go-compactgenome/codec"
)

type Options struct {
	Alphabet *alphabet.Alphabet
	Registry *alphabet.Registry
	Codec    *codec.CBORCodec
}

// Option is a generic option type. Implementations type assert to their
// options record and ignore options that do not apply to them.
type Option func(any)

// WithAlphabet sets the alphabet every genome in the store must use. The
// default is alphabet.DNA.
func WithAlphabet(a *alphabet.Alphabet) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Alphabet = a
		}
	}
}

// WithRegistry sets the registry used to resolve alphabet ids on Import. It is
// ignored if WithCodec is also given.
func WithRegistry(reg *alphabet.Registry) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Registry = reg
		}
	}
}

func WithCodec(c *codec.CBORCodec) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Codec = c
		}
	}
}
