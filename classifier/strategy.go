package classifier

import (
	"regexp"
	"strings"
)

// Strategy maps a filename to an indicator
type Strategy func(fileName string) (string, bool)

// Hint represents keyword hints for one indicator
type Hint struct {
	Indicator string
	Keywords  []string
}

// MinKeywordMatches is the number of distinct hints a filename has to contain
const MinKeywordMatches = 2

var indicatorPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// Exact returns a strategy resolving filenames through a fixed table
func Exact(mappings map[string]string) Strategy {
	return func(fileName string) (string, bool) {
		if fileName == "" {
			return "", false
		}
		indicator, ok := mappings[fileName]
		return indicator, ok && indicator != ""
	}
}

// Pattern returns a strategy accepting the first dotted numeric token that is a known indicator
func Pattern(known func(indicator string) bool) Strategy {
	return func(fileName string) (string, bool) {
		for _, candidate := range indicatorPattern.FindAllString(strings.ToLower(fileName), -1) {
			if known(candidate) {
				return candidate, true
			}
		}
		return "", false
	}
}

// Keyword returns a strategy accepting the first indicator whose hints occur at least minMatches times
func Keyword(hints []Hint, minMatches int) Strategy {
	if minMatches < 1 {
		minMatches = MinKeywordMatches
	}
	return func(fileName string) (string, bool) {
		if fileName == "" {
			return "", false
		}
		name := strings.ToLower(fileName)
		for _, hint := range hints {
			count := 0
			for _, keyword := range hint.Keywords {
				if strings.Contains(name, strings.ToLower(keyword)) {
					count++
				}
			}
			if count >= minMatches {
				return hint.Indicator, true
			}
		}
		return "", false
	}
}

// ExactMappings returns a copy of the built-in filename table
func ExactMappings() map[string]string {
	ret := make(map[string]string, len(exactMappings))
	for k, v := range exactMappings {
		ret[k] = v
	}
	return ret
}

// KeywordHints returns a copy of the built-in keyword table
func KeywordHints() []Hint {
	ret := make([]Hint, 0, len(keywordHints))
	for _, hint := range keywordHints {
		ret = append(ret, Hint{Indicator: hint.Indicator, Keywords: append([]string(nil), hint.Keywords...)})
	}
	return ret
}
