package chunk

import (
	"regexp"
	"strings"
)

var (
	unicodeEscapeRe = regexp.MustCompile(`\\u[0-9a-fA-F]{4}`)
	nonASCIIRe      = regexp.MustCompile(`[^\x00-\x7F]+`)
	underscoreRunRe = regexp.MustCompile(`[_]{2,}`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// CleanText normalizes a chunk candidate for embedding: newlines become
// spaces, stray unicode escape sequences, non-ASCII artifacts and underscore
// runs are stripped, and whitespace is collapsed.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = unicodeEscapeRe.ReplaceAllString(text, " ")
	text = nonASCIIRe.ReplaceAllString(text, " ")
	text = underscoreRunRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// finalize applies the normalization pass to candidate chunks: clean each,
// hard-split any that still exceed maxLength, and drop any below minLength.
// Order is preserved.
func finalize(candidates []string, minLength, maxLength int) []string {
	var result []string
	for _, candidate := range candidates {
		cleaned := CleanText(candidate)
		for _, piece := range splitByBudget(cleaned, maxLength) {
			if len(piece) >= minLength {
				result = append(result, piece)
			}
		}
	}
	return result
}

// splitByBudget splits text into pieces of at most maxLength characters,
// breaking on word boundaries where possible.
func splitByBudget(text string, maxLength int) []string {
	if len(text) <= maxLength {
		return []string{text}
	}

	var pieces []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		// A single word longer than the budget is cut mid-word.
		for len(word) > maxLength {
			if current.Len() > 0 {
				pieces = append(pieces, current.String())
				current.Reset()
			}
			pieces = append(pieces, word[:maxLength])
			word = word[maxLength:]
		}
		needed := len(word)
		if current.Len() > 0 {
			needed += current.Len() + 1
		}
		if needed > maxLength {
			pieces = append(pieces, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		pieces = append(pieces, current.String())
	}
	return pieces
}
