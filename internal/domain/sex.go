package domain

import "github.com/kapu/pedigree-chart-go/internal/util"

type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

func (s Sex) String() string {
	return string(s)
}

func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale, SexUnknown:
		return true
	default:
		return false
	}
}

// ParseSex accepts both the full names and the single-letter GEDCOM codes.
// Anything unrecognized maps to SexUnknown.
func ParseSex(value string) Sex {
	switch util.Normalize(value) {
	case "m", "male":
		return SexMale
	case "f", "female":
		return SexFemale
	default:
		return SexUnknown
	}
}
