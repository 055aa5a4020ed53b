package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-compactgenome/alphabet"
)

const (
	defaultLogLevel = "NOOP"
	serviceName     = "compactgenome"

	// longest line accepted by the line oriented commands
	maxLineBytes = 1 << 30
)

// loggingStarted is set once logger.New has been called and logger.OnExit must
// run before the process exits.
var loggingStarted bool

// app is the state shared by every sub command once the persistent flags have
// been processed.
type app struct {
	log          logger.Logger
	logLevel     string
	alphabetFile string
	registry     *alphabet.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          serviceName,
		Short:        "Pack, unpack and inspect genomes stored with a few bits per symbol",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", defaultLogLevel, "log level (NOOP, DEBUG, INFO, ...)")
	root.PersistentFlags().StringVar(&a.alphabetFile, "alphabets", "", "YAML file of additional alphabet definitions")

	root.AddCommand(
		newPackCmd(a),
		newUnpackCmd(a),
		newRevcompCmd(a),
		newStatsCmd(a),
		newBundleCmd(a),
		newUnbundleCmd(a),
		newKmersCmd(a),
	)
	return root
}

func (a *app) init() error {
	logger.New(a.logLevel)
	loggingStarted = true
	a.log = logger.Sugar.WithServiceName(serviceName)

	if a.alphabetFile == "" {
		a.registry = alphabet.Builtin()
		return nil
	}
	f, err := os.Open(a.alphabetFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if a.registry, err = alphabet.LoadRegistry(f); err != nil {
		return fmt.Errorf("%s: %w", a.alphabetFile, err)
	}
	a.log.Debugf("loaded %d alphabets from %s", len(a.registry.All()), a.alphabetFile)
	return nil
}

func (a *app) alphabet(name string) (*alphabet.Alphabet, error) {
	alpha, ok := a.registry.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown alphabet %q", name)
	}
	return alpha, nil
}

func addAlphabetFlag(cmd *cobra.Command, name *string) {
	cmd.Flags().StringVar(name, "alphabet", "dna", "alphabet name")
}

// readSequence reads all of r as one sequence. Line breaks and other white
// space are dropped.
func readSequence(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(string(data)), ""), nil
}

// eachLine calls f with every line of r, white space trimmed. Empty lines are
// passed through.
func eachLine(r io.Reader, f func(line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if err := f(strings.TrimSpace(sc.Text())); err != nil {
			return err
		}
	}
	return sc.Err()
}
