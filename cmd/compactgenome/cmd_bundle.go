package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-compactgenome/store"
)

func (a *app) newStore(alphabetName string) (*store.Store, error) {
	alpha, err := a.alphabet(alphabetName)
	if err != nil {
		return nil, err
	}
	return store.New(a.log, store.WithAlphabet(alpha), store.WithRegistry(a.registry))
}

func newBundleCmd(a *app) *cobra.Command {
	var alphabetName string
	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Pack every non empty line on stdin into one CBOR store export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newStore(alphabetName)
			if err != nil {
				return err
			}
			lineNo := 0
			err = eachLine(cmd.InOrStdin(), func(line string) error {
				lineNo++
				if line == "" {
					return nil
				}
				h, err := s.AddText(line)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), "%s\t%d\n", h, lineNo)
				return err
			})
			if err != nil {
				return err
			}
			data, err := s.Export()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	addAlphabetFlag(cmd, &alphabetName)
	return cmd
}

func newUnbundleCmd(a *app) *cobra.Command {
	var alphabetName string
	cmd := &cobra.Command{
		Use:   "unbundle",
		Short: "Print every genome of a store export as a handle and text line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newStore(alphabetName)
			if err != nil {
				return err
			}
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if _, err := s.Import(data); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, h := range s.Handles() {
				g, err := s.Get(h)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "%s\t%s\n", h, g.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addAlphabetFlag(cmd, &alphabetName)
	return cmd
}
