package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-compactgenome/bloom"
	"github.com/forestrie/go-compactgenome/genome"
)

func newKmersCmd(a *app) *cobra.Command {
	var alphabetName string
	var queries []string
	params := bloom.ParamsV1{}
	cmd := &cobra.Command{
		Use:   "kmers",
		Short: "Build a k-mer filter from the lines on stdin and test each --query against it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha, err := a.alphabet(alphabetName)
			if err != nil {
				return err
			}
			var refs []*genome.BitPacked
			lineNo := 0
			err = eachLine(cmd.InOrStdin(), func(line string) error {
				lineNo++
				g, err := genome.NewBitPacked(alpha, line)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				params.ExpectedKmers += bloom.KmerCount(g.Len(), int(params.KmerLen))
				refs = append(refs, g)
				return nil
			})
			if err != nil {
				return err
			}
			params.ExpectedKmers = max(params.ExpectedKmers, 1)
			region, err := bloom.NewV1(alpha, params)
			if err != nil {
				return err
			}
			for _, g := range refs {
				if _, err := bloom.AddGenomeV1(region, g); err != nil {
					return err
				}
			}
			a.log.Debugf("k-mer filter: %d references, %d bytes", len(refs), len(region))

			out := cmd.OutOrStdout()
			for _, q := range queries {
				g, err := genome.NewBitPacked(alpha, q)
				if err != nil {
					return fmt.Errorf("query %q: %w", q, err)
				}
				ok, err := bloom.MaybeContainsAllV1(region, g)
				if err != nil {
					return fmt.Errorf("query %q: %w", q, err)
				}
				answer := "absent"
				if ok {
					answer = "maybe"
				}
				if _, err := fmt.Fprintf(out, "%s\t%s\n", q, answer); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addAlphabetFlag(cmd, &alphabetName)
	cmd.Flags().Uint8Var(&params.KmerLen, "k", 16, "k-mer length")
	cmd.Flags().Uint64Var(&params.BitsPerElement, "bits-per-kmer", 10, "filter bits per expected k-mer")
	cmd.Flags().Uint8Var(&params.Hashes, "hashes", 7, "hash functions per k-mer")
	cmd.Flags().BoolVar(&params.Canonical, "canonical", false, "treat a k-mer and its reverse complement as the same")
	cmd.Flags().StringArrayVar(&queries, "query", nil, "sequence to test, may be repeated")
	return cmd
}
