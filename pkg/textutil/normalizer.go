// Package textutil provides the text processing primitives used by the
// search and suggestion domains: normalization, query variation expansion,
// and lexical similarity scoring.
package textutil

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// MinWordLength is the minimum token length kept after normalization.
const MinWordLength = 2

// Normalizer reduces free text to normalized tokens. It holds the English
// lemma dictionary, which is expensive to load, so one instance is created
// at startup and shared.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
}

// NewNormalizer creates a Normalizer with the English lemma dictionary.
func NewNormalizer() (*Normalizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("textutil: failed to load lemma dictionary: %w", err)
	}
	return &Normalizer{lemmatizer: lemmatizer}, nil
}

// Normalize lowercases the text, strips every character outside [a-z0-9]
// and whitespace, tokenizes, drops stop words and tokens shorter than
// MinWordLength, and reduces each remaining token to its lemma. Unknown
// words pass through unchanged. Empty input yields an empty slice.
func (n *Normalizer) Normalize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, text)

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) < MinWordLength || IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, n.lemmatizer.Lemma(tok))
	}
	return tokens
}

// NormalizeJoin normalizes the text and joins the tokens with single spaces.
func (n *Normalizer) NormalizeJoin(text string) string {
	return strings.Join(n.Normalize(text), " ")
}
