package domain

import "github.com/kapu/pedigree-chart-go/internal/util"

// Orientation selects the axis generations grow along when a chart is laid
// out: vertical stacks generations bottom-up, horizontal left-to-right.
type Orientation string

const (
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
)

func (o Orientation) String() string {
	return string(o)
}

func (o Orientation) IsValid() bool {
	switch o {
	case OrientationVertical, OrientationHorizontal:
		return true
	default:
		return false
	}
}

func ParseOrientation(value string) Orientation {
	switch util.Normalize(value) {
	case "horizontal", "h":
		return OrientationHorizontal
	default:
		return OrientationVertical
	}
}
