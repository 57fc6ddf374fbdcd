// Package normalizer prepares extracted page text for the inference API.
package normalizer

import "strings"

// quoteReplacer drops quote characters that interfere with the prompt.
var quoteReplacer = strings.NewReplacer(`'`, "", `"`, "", "“", "", "”", "")

// Normalize collapses whitespace runs to single spaces, strips quote
// characters and truncates to the first maxWords words. Truncation is a
// plain prefix cut. Whitespace-only input normalizes to "".
func Normalize(text string, maxWords int) string {
	words := strings.Fields(quoteReplacer.Replace(text))
	if maxWords > 0 && len(words) > maxWords {
		words = words[:maxWords]
	}
	return strings.Join(words, " ")
}

// WordCount reports how many words Normalize would keep before truncation.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
