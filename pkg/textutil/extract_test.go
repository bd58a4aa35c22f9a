package textutil

import "testing"

func TestExtract(t *testing.T) {
	t.Run("color and price ceiling", func(t *testing.T) {
		attrs := Extract("I want a red bag under $50")
		if attrs.Color == nil || *attrs.Color != "red" {
			t.Errorf("Expected color red, got %v", attrs.Color)
		}
		if attrs.PriceCeiling == nil || *attrs.PriceCeiling != 50.0 {
			t.Errorf("Expected price ceiling 50.0, got %v", attrs.PriceCeiling)
		}
	})

	t.Run("color matching is case-insensitive and whole-word", func(t *testing.T) {
		attrs := Extract("BLACK leather jacket")
		if attrs.Color == nil || *attrs.Color != "black" {
			t.Errorf("Expected color black, got %v", attrs.Color)
		}

		// "redwood" must not match "red".
		attrs = Extract("redwood table")
		if attrs.Color != nil {
			t.Errorf("Expected no color, got %q", *attrs.Color)
		}
	})

	t.Run("first color wins", func(t *testing.T) {
		attrs := Extract("blue and green sneakers")
		if attrs.Color == nil || *attrs.Color != "blue" {
			t.Errorf("Expected color blue, got %v", attrs.Color)
		}
	})

	t.Run("price patterns", func(t *testing.T) {
		cases := []struct {
			text string
			want float64
		}{
			{"headphones under 100", 100},
			{"headphones less than $25", 25},
			{"a gift around $30", 30},
		}
		for _, c := range cases {
			attrs := Extract(c.text)
			if attrs.PriceCeiling == nil || *attrs.PriceCeiling != c.want {
				t.Errorf("Extract(%q): expected price ceiling %v, got %v", c.text, c.want, attrs.PriceCeiling)
			}
		}
	})

	t.Run("no attributes", func(t *testing.T) {
		attrs := Extract("wireless keyboard")
		if attrs.Color != nil || attrs.PriceCeiling != nil {
			t.Errorf("Expected empty attributes, got %+v", attrs)
		}
	})
}
