package textutil

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	n, err := NewNormalizer()
	if err != nil {
		t.Fatalf("NewNormalizer failed: %v", err)
	}

	t.Run("tokens are lowercase alphanumeric and filtered", func(t *testing.T) {
		tokens := n.Normalize("The QUICK-Brown fox, jumped over 12 LAZY dogs!!!")
		if len(tokens) == 0 {
			t.Fatal("Expected tokens, got none")
		}
		for _, tok := range tokens {
			if len(tok) < MinWordLength {
				t.Errorf("Token %q shorter than MinWordLength", tok)
			}
			if IsStopWord(tok) {
				t.Errorf("Stop word %q not removed", tok)
			}
			for _, r := range tok {
				if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
					t.Errorf("Token %q contains non-alphanumeric or uppercase rune %q", tok, r)
				}
			}
		}
	})

	t.Run("drops stop words and single characters", func(t *testing.T) {
		tokens := n.Normalize("the a of x red")
		if len(tokens) != 1 || tokens[0] != "red" {
			t.Errorf("Expected [red], got %v", tokens)
		}
	})

	t.Run("lemmatizes plural forms", func(t *testing.T) {
		tokens := n.Normalize("shoes")
		if len(tokens) != 1 || tokens[0] != "shoe" {
			t.Errorf("Expected [shoe], got %v", tokens)
		}
	})

	t.Run("empty input yields empty sequence", func(t *testing.T) {
		if tokens := n.Normalize(""); len(tokens) != 0 {
			t.Errorf("Expected no tokens, got %v", tokens)
		}
	})

	t.Run("punctuation only yields empty sequence", func(t *testing.T) {
		if tokens := n.Normalize("!!! ... ???"); len(tokens) != 0 {
			t.Errorf("Expected no tokens, got %v", tokens)
		}
	})
}

func TestNormalizeJoin(t *testing.T) {
	n, err := NewNormalizer()
	if err != nil {
		t.Fatalf("NewNormalizer failed: %v", err)
	}

	got := n.NormalizeJoin("Red Shoes")
	if got != "red shoe" {
		t.Errorf("Expected %q, got %q", "red shoe", got)
	}
}
