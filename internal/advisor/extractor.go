package advisor

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/advisorkit/advisor/internal/models"
)

// unparseableExplanation is returned when no extraction strategy succeeds.
const unparseableExplanation = "Unable to parse specific allocations. Please review the full response for details."

// Extractor recovers a structured allocation from free-form model text using
// a strict cascade: direct JSON extraction, then per-asset percentage
// matching, then a fixed cash fallback. It is a pure function of its input
// and safe for concurrent use.
type Extractor struct {
	assets   []string
	patterns []*regexp.Regexp
}

// NewExtractor compiles per-asset patterns for the given asset names. Each
// asset is searched independently with a case-insensitive
// "<asset> ... <digits>%" pattern; "." does not cross newlines.
func NewExtractor(assets []string) *Extractor {
	patterns := make([]*regexp.Regexp, len(assets))
	for i, asset := range assets {
		patterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(asset) + `.*?(\d+)%`)
	}
	return &Extractor{assets: assets, patterns: patterns}
}

// Extract parses raw model text into an AllocationResult. First success wins:
//  1. The leftmost "{" through the rightmost "}" parsed as JSON; its
//     allocation and explanation fields are returned as-is (absent fields
//     default to an empty map / empty string).
//  2. Per-asset percentage matches against the raw text, paired with the
//     entire raw text as the explanation.
//  3. The fixed {"Cash": 100} fallback.
//
// Malformed JSON between braces falls through to step 2 rather than erroring.
func (e *Extractor) Extract(text string) models.AllocationResult {
	if result, ok := extractJSON(text); ok {
		return result
	}

	allocation := make(map[string]float64)
	for i, pattern := range e.patterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			pct, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			allocation[e.assets[i]] = float64(pct)
		}
	}

	if len(allocation) > 0 {
		return models.AllocationResult{Allocation: allocation, Explanation: text}
	}

	return models.AllocationResult{
		Allocation:  map[string]float64{"Cash": 100},
		Explanation: unparseableExplanation,
	}
}

// extractJSON attempts the direct JSON strategy: the substring from the first
// "{" to the last "}" in the text, greedy across the whole text.
func extractJSON(text string) (models.AllocationResult, bool) {
	start := strings.Index(text, "{")
	if start < 0 {
		return models.AllocationResult{}, false
	}
	end := strings.LastIndex(text, "}")
	if end <= start {
		return models.AllocationResult{}, false
	}

	var payload struct {
		Allocation  map[string]float64 `json:"allocation"`
		Explanation string             `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return models.AllocationResult{}, false
	}

	if payload.Allocation == nil {
		payload.Allocation = map[string]float64{}
	}

	return models.AllocationResult{
		Allocation:  payload.Allocation,
		Explanation: payload.Explanation,
	}, true
}
