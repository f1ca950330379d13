package bayes

import (
	"regexp"
	"strings"
)

// Tokenizer splits a text into the tokens counted by the classifier.
type Tokenizer func(text string) []string

var nonWord = regexp.MustCompile(`[^\w]`)

// MinTokenLength is the length a token must exceed to be kept by SimpleTokenizer.
const MinTokenLength = 3

// SimpleTokenizer upper-cases text, turns every non-word character into a
// separator and keeps the tokens longer than MinTokenLength. Repeated tokens
// are kept once, at the position of their last occurrence.
func SimpleTokenizer(text string) []string {
	fields := strings.Fields(nonWord.ReplaceAllString(strings.ToUpper(text), " "))

	last := make(map[string]int, len(fields))
	for i, f := range fields {
		last[f] = i
	}

	tokens := make([]string, 0, len(last))
	for i, f := range fields {
		if len(f) > MinTokenLength && last[f] == i {
			tokens = append(tokens, f)
		}
	}

	return tokens
}
