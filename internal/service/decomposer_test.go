package service

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestDecomposeSplitsGivenAndSurnameTokens(t *testing.T) {
	decomposer := NewNameDecomposer(zap.NewNop())

	parts := decomposer.Decompose(`Johann Sebastian <span class="SURN">Bach</span>`, "Johann Sebastian Bach", "")

	if strings.Join(parts.FirstNames, " ") != "Johann Sebastian" {
		t.Fatalf("expected given names in document order, got %v", parts.FirstNames)
	}
	if strings.Join(parts.LastNames, " ") != "Bach" {
		t.Fatalf("expected surname from the marked span, got %v", parts.LastNames)
	}
	if parts.DisplayName != "Johann Sebastian Bach" {
		t.Fatalf("expected display name from the flat rendering, got %q", parts.DisplayName)
	}
}

func TestDecomposeKeepsSurnameSuffixInSurnameStream(t *testing.T) {
	decomposer := NewNameDecomposer(zap.NewNop())

	parts := decomposer.Decompose(`John <span class="SURN">Doe</span> Jr.`, "John Doe Jr.", "")

	if strings.Join(parts.FirstNames, " ") != "John" {
		t.Fatalf("expected text after the surname span to stay out of given names, got %v", parts.FirstNames)
	}
	if strings.Join(parts.LastNames, " ") != "Doe Jr." {
		t.Fatalf("expected suffix to join the surname stream, got %v", parts.LastNames)
	}
}

func TestDecomposeSplitsCompoundSurnames(t *testing.T) {
	decomposer := NewNameDecomposer(zap.NewNop())

	parts := decomposer.Decompose(`Maria <span class="SURN">de la Cruz</span>`, "Maria de la Cruz", "")

	if len(parts.LastNames) != 3 {
		t.Fatalf("expected compound surname as separate tokens, got %v", parts.LastNames)
	}
	if strings.Join(parts.LastNames, " ") != "de la Cruz" {
		t.Fatalf("expected surname tokens in order, got %v", parts.LastNames)
	}
}

func TestDecomposeWithoutSurnameSpanYieldsNoTokens(t *testing.T) {
	decomposer := NewNameDecomposer(zap.NewNop())

	parts := decomposer.Decompose("Madonna", "Madonna", "")

	if len(parts.FirstNames) != 0 || len(parts.LastNames) != 0 {
		t.Fatalf("expected no tokens without a surname marker, got %v / %v", parts.FirstNames, parts.LastNames)
	}
	if parts.DisplayName != "Madonna" {
		t.Fatalf("expected display name to survive, got %q", parts.DisplayName)
	}
}

func TestDecomposeSurnameOnlyLeavesGivenNamesEmpty(t *testing.T) {
	decomposer := NewNameDecomposer(zap.NewNop())

	parts := decomposer.Decompose(`<span class="SURN">Doe</span>`, "Doe", "")

	if len(parts.FirstNames) != 0 {
		t.Fatalf("expected no given names, got %v", parts.FirstNames)
	}
	if strings.Join(parts.LastNames, " ") != "Doe" {
		t.Fatalf("expected surname to be extracted, got %v", parts.LastNames)
	}
}

func TestDecomposeExcludesNicknames(t *testing.T) {
	decomposer := NewNameDecomposer(zap.NewNop())

	parts := decomposer.Decompose(`John <q class="wt-nickname">Johnny</q> <span class="SURN">Doe</span>`, "John Doe", "")

	for _, token := range append(parts.FirstNames, parts.LastNames...) {
		if token == "Johnny" {
			t.Fatalf("nickname leaked into name tokens: %v / %v", parts.FirstNames, parts.LastNames)
		}
	}
	if strings.Join(parts.FirstNames, " ") != "John" {
		t.Fatalf("expected given names unchanged around the nickname, got %v", parts.FirstNames)
	}
	if strings.Join(parts.LastNames, " ") != "Doe" {
		t.Fatalf("expected surname unchanged around the nickname, got %v", parts.LastNames)
	}
}

func TestDecomposeExtractsPreferredName(t *testing.T) {
	decomposer := NewNameDecomposer(zap.NewNop())

	parts := decomposer.Decompose(`<span class="starredname">Johann</span> Sebastian <span class="SURN">Bach</span>`, "Johann Sebastian Bach", "")

	if parts.PreferredName != "Johann" {
		t.Fatalf("expected preferred name from the starred element, got %q", parts.PreferredName)
	}
	if strings.Join(parts.FirstNames, " ") != "Johann Sebastian" {
		t.Fatalf("expected starred name to stay in the given-name stream, got %v", parts.FirstNames)
	}
}

func TestDecomposeStripsMissingNamePlaceholders(t *testing.T) {
	decomposer := NewNameDecomposer(zap.NewNop())

	parts := decomposer.Decompose("", "@P.N. @N.N.", "")
	if parts.DisplayName != "" {
		t.Fatalf("expected placeholder-only name to collapse to empty, got %q", parts.DisplayName)
	}

	parts = decomposer.Decompose("", "John @N.N.", "")
	if parts.DisplayName != "John" {
		t.Fatalf("expected partial placeholder to be stripped, got %q", parts.DisplayName)
	}
}

func TestDecomposeParsesAlternateName(t *testing.T) {
	decomposer := NewNameDecomposer(zap.NewNop())

	parts := decomposer.Decompose("", "", `<span class="NAME">Mikhail Petrov</span> (recorded 1892)`)

	if strings.Join(parts.AlternativeNames, " ") != "Mikhail Petrov" {
		t.Fatalf("expected only the marked name element, got %v", parts.AlternativeNames)
	}
	if parts.IsAlternativeRtl {
		t.Fatalf("expected Latin alternate to read left to right")
	}
}

func TestDecomposeAlternateFallsBackToWholeFragment(t *testing.T) {
	decomposer := NewNameDecomposer(zap.NewNop())

	parts := decomposer.Decompose("", "", "Misha Grigorievich")

	if strings.Join(parts.AlternativeNames, " ") != "Misha Grigorievich" {
		t.Fatalf("expected unmarked fragment text as alternate, got %v", parts.AlternativeNames)
	}
}

func TestDecomposeDetectsRightToLeftAlternate(t *testing.T) {
	decomposer := NewNameDecomposer(zap.NewNop())

	parts := decomposer.Decompose("", "", `<span class="NAME">משה לוי</span>`)

	if len(parts.AlternativeNames) != 2 {
		t.Fatalf("expected two alternate tokens, got %v", parts.AlternativeNames)
	}
	if !parts.IsAlternativeRtl {
		t.Fatalf("expected Hebrew alternate to be flagged right to left")
	}
}

func TestDecomposeHandlesEmptyInput(t *testing.T) {
	decomposer := NewNameDecomposer(zap.NewNop())

	parts := decomposer.Decompose("", "", "")

	if parts.FirstNames == nil || parts.LastNames == nil || parts.AlternativeNames == nil {
		t.Fatalf("expected empty collections, not nil: %+v", parts)
	}
	if len(parts.FirstNames) != 0 || len(parts.LastNames) != 0 || len(parts.AlternativeNames) != 0 {
		t.Fatalf("expected no tokens for empty input, got %+v", parts)
	}
	if parts.DisplayName != "" || parts.PreferredName != "" {
		t.Fatalf("expected empty names for empty input, got %+v", parts)
	}
	if parts.IsAlternativeRtl {
		t.Fatalf("expected empty alternate to default to left to right")
	}
}

func TestDecomposeIsDeterministic(t *testing.T) {
	decomposer := NewNameDecomposer(zap.NewNop())
	markup := `<span class="starredname">Anna</span> Maria <span class="SURN">van der Berg</span>`

	first := decomposer.Decompose(markup, "Anna Maria van der Berg", `<span class="NAME">אנה</span>`)
	second := decomposer.Decompose(markup, "Anna Maria van der Berg", `<span class="NAME">אנה</span>`)

	if strings.Join(first.FirstNames, "|") != strings.Join(second.FirstNames, "|") ||
		strings.Join(first.LastNames, "|") != strings.Join(second.LastNames, "|") ||
		first.DisplayName != second.DisplayName ||
		first.PreferredName != second.PreferredName ||
		first.IsAlternativeRtl != second.IsAlternativeRtl {
		t.Fatalf("expected identical results for identical input:\n%+v\n%+v", first, second)
	}
}
