package metrics

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Scorer produces a similarity score in [0, 1] for two string values.
type Scorer interface {
	Score(a, b string) float64
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(a, b string) float64

// Score implements Scorer.
func (f ScorerFunc) Score(a, b string) float64 { return f(a, b) }

// NewDiffScorer returns the default scorer: the length of text a
// diff-match-patch pass reports as equal, measured against the longer input.
// Identical strings score 1, disjoint strings 0.
func NewDiffScorer() Scorer {
	return ScorerFunc(func(a, b string) float64 {
		if a == b {
			return 1
		}
		diffCfg := diffpatch.New()
		doMultiLine := strings.Contains(a, "\n") && strings.Contains(b, "\n")
		common := 0
		for _, diff := range diffCfg.DiffMain(a, b, doMultiLine) {
			if diff.Type == diffpatch.DiffEqual {
				common += len(diff.Text)
			}
		}
		longer := len(a)
		if len(b) > longer {
			longer = len(b)
		}
		return float64(common) / float64(longer)
	})
}
