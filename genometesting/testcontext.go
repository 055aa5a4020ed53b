package genometesting

import (
	"iter"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-compactgenome/alphabet"
)

type TestContext struct {
	Log  logger.Logger
	T    *testing.T
	Rand *rand.Rand
}

type TestConfig struct {
	// Seed fixes the generated sequences so that failures reproduce from run
	// to run. Zero is a valid seed.
	Seed            uint64
	TestLabelPrefix string
	LogLevel        string // defaults to NOOP
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:    t,
		Rand: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomText returns n characters drawn uniformly from a.
func (c *TestContext) RandomText(a *alphabet.Alphabet, n int) string {
	chars := a.Characters()
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(chars[c.Rand.IntN(len(chars))])
	}
	return sb.String()
}

// RandomTexts returns count texts whose lengths are drawn from [0, maxLen].
func (c *TestContext) RandomTexts(a *alphabet.Alphabet, count, maxLen int) []string {
	texts := make([]string, count)
	for i := range texts {
		texts[i] = c.RandomText(a, c.Rand.IntN(maxLen+1))
	}
	return texts
}

// AllTexts yields every text over a of length 0 to maxLen, shorter texts
// first. The number of texts grows as Size()^maxLen, keep maxLen small.
func AllTexts(a *alphabet.Alphabet, maxLen int) iter.Seq[string] {
	return func(yield func(string) bool) {
		chars := a.Characters()
		buf := make([]byte, 0, maxLen)
		var walk func(n int) bool
		walk = func(n int) bool {
			if len(buf) == n {
				return yield(string(buf))
			}
			for i := 0; i < len(chars); i++ {
				buf = append(buf, chars[i])
				ok := walk(n)
				buf = buf[:len(buf)-1]
				if !ok {
					return false
				}
			}
			return true
		}
		for n := 0; n <= maxLen; n++ {
			if !walk(n) {
				return
			}
		}
	}
}
