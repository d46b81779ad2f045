package textsim

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTokenize(t *testing.T) {
	got := Tokenize("  Hello,   WORLD! re-use  42 ")
	want := []string{"hello", "world", "re-use", "42"}
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
	if got := Tokenize("!!! ???"); len(got) != 0 {
		t.Fatalf("expected no tokens for punctuation-only input, got %v", got)
	}
}

func TestTitleSimilaritySymmetry(t *testing.T) {
	a := "Understanding Home Insurance Deductibles"
	b := "Deductibles and You"
	if x, y := TitleSimilarity(a, b), TitleSimilarity(b, a); !almostEqual(x, y) {
		t.Fatalf("similarity not symmetric: %v vs %v", x, y)
	}
}

func TestTitleSimilarityIdentity(t *testing.T) {
	if got := TitleSimilarity("Repotting Basics", "Repotting Basics"); !almostEqual(got, 1) {
		t.Fatalf("identical titles: got %v want 1", got)
	}
}

func TestTitleSimilarityBothEmpty(t *testing.T) {
	if got := TitleSimilarity("", ""); !almostEqual(got, 0) {
		t.Fatalf("two empty titles: got %v want 0", got)
	}
}

func TestTitleSimilarityOverlap(t *testing.T) {
	// {understanding, deductibles} vs {understanding, deductibles, today}
	got := TitleSimilarity("Understanding Deductibles", "Understanding Deductibles Today")
	if !almostEqual(got, 2.0/3.0) {
		t.Fatalf("got %v want 2/3", got)
	}
}

func TestTitleSimilarityDisjoint(t *testing.T) {
	if got := TitleSimilarity("Understanding Deductibles", "Flood Coverage Basics"); !almostEqual(got, 0) {
		t.Fatalf("disjoint titles: got %v want 0", got)
	}
}

func TestBodySimilarityStripsMarkup(t *testing.T) {
	a := "<p>one two three four five six</p>"
	b := "one two three four five six"
	if got := BodySimilarity(a, b, 5); !almostEqual(got, 1) {
		t.Fatalf("markup should not affect comparison: got %v want 1", got)
	}
}

func TestBodySimilarityShortBody(t *testing.T) {
	long := strings.Repeat("water the plant weekly and ", 20)
	if got := BodySimilarity("too short", long, 5); !almostEqual(got, 0) {
		t.Fatalf("short body must score 0, got %v", got)
	}
	if got := BodySimilarity(long, "too short", 5); !almostEqual(got, 0) {
		t.Fatalf("short body must score 0 regardless of side, got %v", got)
	}
}

func TestBodySimilarityPhraseReuse(t *testing.T) {
	a := "the quick brown fox jumps over the lazy dog near the river bank"
	b := "yesterday the quick brown fox jumps over the lazy dog again somewhere"
	got := BodySimilarity(a, b, 5)
	if got <= 0 {
		t.Fatalf("shared phrase should score above 0, got %v", got)
	}
	// Unrelated bodies with shared vocabulary but no shared phrases.
	c := "dog river fox bank lazy quick jumps brown the near over"
	if got := BodySimilarity(a, c, 5); !almostEqual(got, 0) {
		t.Fatalf("reordered vocabulary should share no shingles, got %v", got)
	}
}

func TestStripMarkup(t *testing.T) {
	got := StripMarkup(`<p class="x">hi</p><br/>there`)
	if strings.Contains(got, "<") || strings.Contains(got, ">") {
		t.Fatalf("markup left behind: %q", got)
	}
	if !strings.Contains(got, "hi") || !strings.Contains(got, "there") {
		t.Fatalf("text content lost: %q", got)
	}
}
