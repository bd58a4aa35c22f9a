package textutil

import (
	"strings"

	"github.com/xrash/smetrics"
)

// Similarity computes a case-insensitive lexical similarity in [0,1] between
// two strings: 1 for identical strings (after case folding), 0 for maximally
// dissimilar ones. It is the indel-style edit-distance ratio (substitutions
// cost 2), symmetric and total: both strings empty yields 1, exactly one
// empty yields 0.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	dist := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return 1.0 - float64(dist)/float64(len(a)+len(b))
}
