package util

import "testing"

func TestMinYearIgnoresQualifierSyntax(t *testing.T) {
	cases := map[string]int{
		"1900":              1900,
		"ABT 1900":          1900,
		"BEF 1950":          1950,
		"BET 1900 AND 1905": 1900,
		"1905-1900":         1900,
		"1 JAN 1900":        1900,
		"in infancy":        0,
		"":                  0,
	}
	for input, want := range cases {
		if got := MinYear(input); got != want {
			t.Fatalf("MinYear(%q): expected %d, got %d", input, want, got)
		}
	}
}

func TestMinYearAcceptsThreeDigitYears(t *testing.T) {
	if got := MinYear("ABT 985"); got != 985 {
		t.Fatalf("expected three-digit year, got %d", got)
	}
	if got := MinYear("day 12"); got != 0 {
		t.Fatalf("expected short numbers ignored, got %d", got)
	}
}
