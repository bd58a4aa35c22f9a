package textutil

import (
	"regexp"
	"strconv"
	"strings"
)

// Attributes holds product attributes recognized in free text.
// Absent attributes are nil.
type Attributes struct {
	Color        *string
	PriceCeiling *float64
}

var (
	colorPattern = regexp.MustCompile(`\b(red|blue|green|black|white|yellow)\b`)
	pricePattern = regexp.MustCompile(`under\s*\$?(\d+)|less than\s*\$?(\d+)|around\s*\$?(\d+)`)
)

// Extract pattern-matches text for product attributes.
// Matching is case-insensitive and only the first match of each
// pattern is used. Malformed numeric text is treated as no match;
// Extract never fails.
func Extract(text string) Attributes {
	var attrs Attributes
	lower := strings.ToLower(text)

	if m := colorPattern.FindStringSubmatch(lower); m != nil {
		color := m[1]
		attrs.Color = &color
	}

	if m := pricePattern.FindStringSubmatch(lower); m != nil {
		// One capture group per alternative; take whichever matched.
		for _, g := range m[1:] {
			if g == "" {
				continue
			}
			if v, err := strconv.ParseFloat(g, 64); err == nil {
				attrs.PriceCeiling = &v
			}
			break
		}
	}

	return attrs
}
