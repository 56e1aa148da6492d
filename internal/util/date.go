package util

import (
	"regexp"
	"strconv"
)

var yearPattern = regexp.MustCompile(`\b(\d{3,4})\b`)

// MinYear extracts the earliest calendar year mentioned in a genealogical
// date string. Qualifier syntax is not interpreted: "ABT 1900", "BET 1900
// AND 1905" and "1900-1905" all resolve to 1900. Returns 0 when no year is
// present.
func MinYear(dateText string) int {
	matches := yearPattern.FindAllString(dateText, -1)
	if len(matches) == 0 {
		return 0
	}

	min := 0
	for _, m := range matches {
		year, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if min == 0 || year < min {
			min = year
		}
	}
	return min
}
