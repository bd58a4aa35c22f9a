package textutil

import "testing"

func TestExpand(t *testing.T) {
	t.Run("two tokens", func(t *testing.T) {
		got := Expand([]string{"red", "shoe"}, "red shoe")
		want := map[string]bool{"red shoe": true, "red": true, "shoe": true}

		if len(got) != len(want) {
			t.Fatalf("Expected %d variations, got %d: %v", len(want), len(got), got)
		}
		for _, v := range got {
			if !want[v] {
				t.Errorf("Unexpected variation %q", v)
			}
		}
	})

	t.Run("original text is always included", func(t *testing.T) {
		got := Expand([]string{"red", "bag"}, "I want a red bag")
		found := false
		for _, v := range got {
			if v == "I want a red bag" {
				found = true
			}
		}
		if !found {
			t.Error("Original text missing from variations")
		}
	})

	t.Run("three tokens yield all contiguous sub-phrases", func(t *testing.T) {
		got := Expand([]string{"a1", "b2", "c3"}, "a1 b2 c3")
		// 3 singles + 2 pairs + 1 triple; the triple equals the original.
		if len(got) != 6 {
			t.Errorf("Expected 6 variations, got %d: %v", len(got), got)
		}
	})

	t.Run("no tokens no original", func(t *testing.T) {
		if got := Expand(nil, ""); len(got) != 0 {
			t.Errorf("Expected no variations, got %v", got)
		}
	})
}
