package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-compactgenome/alphabet"
	"github.com/forestrie/go-compactgenome/genome"
)

func newPackCmd(a *app) *cobra.Command {
	var alphabetName string
	var wordBits uint
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack the sequence on stdin into the binary genome layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha, err := a.alphabet(alphabetName)
			if err != nil {
				return err
			}
			text, err := readSequence(cmd.InOrStdin())
			if err != nil {
				return err
			}
			data, err := packText(alpha, text, wordBits)
			if err != nil {
				return err
			}
			a.log.Debugf("packed %d symbols of %s into %d bytes", len(text), alpha, len(data))
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	addAlphabetFlag(cmd, &alphabetName)
	cmd.Flags().UintVar(&wordBits, "word-bits", 64, "storage word width: 8, 16, 32 or 64")
	return cmd
}

func packText(alpha *alphabet.Alphabet, text string, wordBits uint) ([]byte, error) {
	switch wordBits {
	case 8:
		return marshalPacked[uint8](alpha, text)
	case 16:
		return marshalPacked[uint16](alpha, text)
	case 32:
		return marshalPacked[uint32](alpha, text)
	case 64:
		return marshalPacked[uint64](alpha, text)
	}
	return nil, fmt.Errorf("%w: %d", genome.ErrBadWordWidth, wordBits)
}

func marshalPacked[W uint8 | uint16 | uint32 | uint64](alpha *alphabet.Alphabet, text string) ([]byte, error) {
	p, err := genome.NewPacked[W](alpha, text)
	if err != nil {
		return nil, err
	}
	return p.MarshalBinary()
}

func newUnpackCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unpack",
		Short: "Print the genome in the binary layout on stdin as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			g, err := genome.UnmarshalV1(data, a.registry)
			if err != nil {
				return err
			}
			a.log.Debugf("unpacked %d symbols of %s", g.Len(), g.Alphabet())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.String())
			return err
		},
	}
}
