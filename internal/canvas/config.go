package canvas

import (
	"fmt"

	"github.com/kapu/pedigree-chart-go/internal/domain"
)

type TextDirection string

const (
	DirectionLTR TextDirection = "ltr"
	DirectionRTL TextDirection = "rtl"
)

func (d TextDirection) IsValid() bool {
	return d == DirectionLTR || d == DirectionRTL
}

// HintLabels are the localized texts the interaction overlay shows.
type HintLabels struct {
	ZoomHint string
	MoveHint string
}

// Config is the read-only configuration a controller is constructed with.
// The caller keeps ownership; the controller never mutates it.
type Config struct {
	TextDirection     TextDirection
	Labels            HintLabels
	LayoutOrientation domain.Orientation
	GenerationCount   int
}

func (c Config) Validate() error {
	if !c.TextDirection.IsValid() {
		return fmt.Errorf("text direction must be ltr or rtl, got %q", c.TextDirection)
	}
	if !c.LayoutOrientation.IsValid() {
		return fmt.Errorf("unknown layout orientation %q", c.LayoutOrientation)
	}
	if c.GenerationCount < 1 {
		return fmt.Errorf("generation count must be positive, got %d", c.GenerationCount)
	}
	return nil
}

// Container describes the host element the drawing surface attaches to.
// Only its pixel bounds matter to the controller.
type Container struct {
	Width  float64
	Height float64
}

func (c Container) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("container must have positive bounds, got %gx%g", c.Width, c.Height)
	}
	return nil
}
