// Package classifier assigns uploaded filenames to evidence indicators.
//
// Resolution runs an ordered list of strategies and the first one that
// resolves wins: the exact filename table, dotted numeric tokens that name a
// catalog indicator, then keyword hints. A filename no strategy resolves is
// unmatched and must not be persisted.
package classifier

import (
	"github.com/viant/policybin/indicator"
)

// Tier identifies the strategy that resolved a filename
type Tier string

const (
	TierNone    Tier = ""
	TierExact   Tier = "exact"
	TierPattern Tier = "pattern"
	TierKeyword Tier = "keyword"
)

// Match represents a classification result
type Match struct {
	FileName  string `json:"fileName"`
	Indicator string `json:"evidenceIndicator,omitempty"`
	Tier      Tier   `json:"tier,omitempty"`
	Matched   bool   `json:"matched"`
}

type tiered struct {
	tier     Tier
	strategy Strategy
}

// Classifier evaluates strategies in priority order
type Classifier struct {
	strategies []tiered
}

// Classify returns the first strategy match for the filename
func (c *Classifier) Classify(fileName string) Match {
	match := Match{FileName: fileName}
	if fileName == "" {
		return match
	}
	for _, candidate := range c.strategies {
		if id, ok := candidate.strategy(fileName); ok {
			match.Indicator = id
			match.Tier = candidate.tier
			match.Matched = true
			return match
		}
	}
	return match
}

// ClassifyAll classifies every filename, preserving order
func (c *Classifier) ClassifyAll(fileNames ...string) []Match {
	ret := make([]Match, 0, len(fileNames))
	for _, fileName := range fileNames {
		ret = append(ret, c.Classify(fileName))
	}
	return ret
}

// Option configures a Classifier
type Option func(*Classifier)

// WithStrategy appends a strategy tagged with tier
func WithStrategy(tier Tier, strategy Strategy) Option {
	return func(c *Classifier) {
		c.strategies = append(c.strategies, tiered{tier: tier, strategy: strategy})
	}
}

// New creates a classifier from options, in evaluation order
func New(opts ...Option) *Classifier {
	ret := &Classifier{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

var defaultClassifier = Default()

// Default returns the exact, pattern, keyword chain bound to the indicator catalog
func Default() *Classifier {
	return New(
		WithStrategy(TierExact, Exact(exactMappings)),
		WithStrategy(TierPattern, Pattern(indicator.Exists)),
		WithStrategy(TierKeyword, Keyword(keywordHints, MinKeywordMatches)),
	)
}

// Classify resolves fileName with the default chain
func Classify(fileName string) (string, bool) {
	match := defaultClassifier.Classify(fileName)
	return match.Indicator, match.Matched
}
