package chunk

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/sentences"
)

// SplitSentences segments text into sentences using Unicode UAX #29 rules.
// Empty and whitespace-only segments are dropped.
func SplitSentences(text string) []string {
	var result []string
	tokens := sentences.FromString(text)
	for tokens.Next() {
		s := strings.TrimSpace(tokens.Value())
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}
