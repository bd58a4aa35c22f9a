package textutil

import "strings"

// Expand returns the original text plus every contiguous sub-phrase of the
// given tokens (joined by single spaces), deduplicated. For n tokens this
// yields up to n(n+1)/2 + 1 variations. Used to widen match recall, not for
// ranking.
func Expand(tokens []string, original string) []string {
	seen := make(map[string]struct{}, len(tokens)*(len(tokens)+1)/2+1)
	variations := make([]string, 0, len(seen))

	add := func(v string) {
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		variations = append(variations, v)
	}

	add(original)
	for i := 0; i < len(tokens); i++ {
		for j := i + 1; j <= len(tokens); j++ {
			add(strings.Join(tokens[i:j], " "))
		}
	}
	return variations
}
