package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-compactgenome/genome"
)

func newRevcompCmd(a *app) *cobra.Command {
	var alphabetName string
	cmd := &cobra.Command{
		Use:   "revcomp",
		Short: "Print the reverse complement of every line on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha, err := a.alphabet(alphabetName)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			lineNo := 0
			return eachLine(cmd.InOrStdin(), func(line string) error {
				lineNo++
				g, err := genome.NewBitPacked(alpha, line)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				rc, err := g.ReverseComplement()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, rc.String())
				return err
			})
		},
	}
	addAlphabetFlag(cmd, &alphabetName)
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	var alphabetName string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the length and packed size of every line on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha, err := a.alphabet(alphabetName)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			lineNo := 0
			return eachLine(cmd.InOrStdin(), func(line string) error {
				lineNo++
				g, err := genome.NewBitPacked(alpha, line)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				canonical := "-"
				c, err := genome.IsCanonical(g)
				switch {
				case err == nil:
					canonical = fmt.Sprint(c)
				case !errors.Is(err, genome.ErrNoComplement):
					return err
				}
				_, err = fmt.Fprintf(out, "length=%d bits_per_symbol=%d packed_bytes=%d canonical=%s\n",
					g.Len(), alpha.BitsPerSymbol(), len(g.Words())*8, canonical)
				return err
			})
		},
	}
	addAlphabetFlag(cmd, &alphabetName)
	return cmd
}
