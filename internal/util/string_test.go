package util

import (
	"strings"
	"testing"
)

func TestTruncateStringCountsRunes(t *testing.T) {
	if got := TruncateString("hello", 10); got != "hello" {
		t.Fatalf("expected short string untouched, got %q", got)
	}
	if got := TruncateString(strings.Repeat("x", 30), 28); got != strings.Repeat("x", 28)+"..." {
		t.Fatalf("expected truncation with ellipsis, got %q", got)
	}
	if got := TruncateString("안녕하세요 세계", 5); got != "안녕하세요..." {
		t.Fatalf("expected rune-based truncation, got %q", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  John \t  Doe \n "); got != "John Doe" {
		t.Fatalf("expected collapsed whitespace, got %q", got)
	}
	if got := CollapseWhitespace("   "); got != "" {
		t.Fatalf("expected whitespace-only input to collapse to empty, got %q", got)
	}
}

func TestRemoveAllDeletesTokens(t *testing.T) {
	if got := RemoveAll("@P.N. @N.N.", "@P.N.", "@N.N."); strings.TrimSpace(got) != "" {
		t.Fatalf("expected all placeholders removed, got %q", got)
	}
	if got := RemoveAll("John @N.N.", "@P.N.", "@N.N."); strings.TrimSpace(got) != "John" {
		t.Fatalf("expected partial removal, got %q", got)
	}
	if got := RemoveAll("John", ""); got != "John" {
		t.Fatalf("expected empty token ignored, got %q", got)
	}
}

func TestSplitTokensDropsEmpties(t *testing.T) {
	tokens := SplitTokens("  de  la   Cruz ")
	if len(tokens) != 3 || tokens[0] != "de" || tokens[2] != "Cruz" {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
	if tokens := SplitTokens("   "); len(tokens) != 0 {
		t.Fatalf("expected no tokens for whitespace, got %v", tokens)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  John DOE "); got != "john doe" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}

func TestContains(t *testing.T) {
	slice := []string{"svg", "png"}
	if !Contains(slice, "png") || Contains(slice, "pdf") {
		t.Fatalf("unexpected membership results for %v", slice)
	}
}
