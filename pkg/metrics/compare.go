package metrics

import (
	"fmt"
	"math"
	"reflect"

	"github.com/goliatone/go-formcompare/pkg/formdata"
)

// Option adjusts how Compare scores fields.
type Option func(*config)

type config struct {
	scorer  Scorer
	palette Palette
}

// WithScorer replaces the default string similarity scorer.
func WithScorer(scorer Scorer) Option {
	return func(c *config) {
		if scorer != nil {
			c.scorer = scorer
		}
	}
}

// WithPalette replaces the default outcome palette.
func WithPalette(palette Palette) Option {
	return func(c *config) {
		c.palette = palette
	}
}

// Compare scores each path across two snapshots and returns the entries keyed
// by path. Equal values match exactly, and a path absent from both sides
// counts as equal. A value present on only one side reports missing. Two
// differing strings score by similarity; any other difference reports a plain
// mismatch.
func Compare(left, right map[string]any, paths []string, opts ...Option) Dict {
	cfg := config{scorer: NewDiffScorer(), palette: DefaultPalette()}
	for _, opt := range opts {
		opt(&cfg)
	}

	dict := make(Dict, len(paths))
	for _, path := range paths {
		leftVal, leftOK := formdata.Get(left, path)
		rightVal, rightOK := formdata.Get(right, path)
		if !leftOK {
			leftVal = nil
		}
		if !rightOK {
			rightVal = nil
		}
		dict[path] = cfg.score(leftVal, rightVal)
	}
	return dict
}

func (cfg config) score(leftVal, rightVal any) Entry {
	switch {
	case reflect.DeepEqual(leftVal, rightVal):
		return Entry{Metric: 1.0, Color: cfg.palette.Match, Comment: "Values match exactly"}
	case leftVal == nil || rightVal == nil:
		return Entry{Metric: 0.0, Color: cfg.palette.Missing, Comment: "One value is missing"}
	}

	leftStr, leftIsStr := leftVal.(string)
	rightStr, rightIsStr := rightVal.(string)
	if leftIsStr && rightIsStr {
		ratio := cfg.scorer.Score(leftStr, rightStr)
		return Entry{
			Metric:  math.Round(ratio*100) / 100,
			Color:   cfg.palette.Partial,
			Comment: fmt.Sprintf("String similarity: %.0f%%", ratio*100),
		}
	}

	return Entry{
		Metric:  0.0,
		Color:   cfg.palette.Different,
		Comment: fmt.Sprintf("Different values: %v vs %v", leftVal, rightVal),
	}
}
