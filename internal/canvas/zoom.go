package canvas

import (
	"fmt"

	"github.com/kapu/pedigree-chart-go/internal/constants"
	"github.com/kapu/pedigree-chart-go/internal/svg"
	"github.com/kapu/pedigree-chart-go/internal/util"
)

// ZoomEngine holds the pan/zoom transform of the content group. All
// mutation happens through event dispatch, which the controller
// serializes, so the engine itself carries no locking.
type ZoomEngine struct {
	target *svg.Element

	scale    float64
	tx, ty   float64
	minScale float64
	maxScale float64
}

func newZoomEngine(target *svg.Element) *ZoomEngine {
	z := &ZoomEngine{
		target:   target,
		scale:    1,
		minScale: constants.Canvas.MinScale,
		maxScale: constants.Canvas.MaxScale,
	}
	z.apply()
	return z
}

func (z *ZoomEngine) Scale() float64 {
	return z.scale
}

func (z *ZoomEngine) Translation() (x, y float64) {
	return z.tx, z.ty
}

// ZoomBy scales by factor around the fixed point (cx, cy) in surface
// coordinates, clamped to the configured scale bounds.
func (z *ZoomEngine) ZoomBy(factor, cx, cy float64) {
	next := util.Clamp(z.scale*factor, z.minScale, z.maxScale)
	if next == z.scale {
		return
	}
	ratio := next / z.scale
	z.tx = cx - ratio*(cx-z.tx)
	z.ty = cy - ratio*(cy-z.ty)
	z.scale = next
	z.apply()
}

func (z *ZoomEngine) ZoomTo(scale float64) {
	z.scale = util.Clamp(scale, z.minScale, z.maxScale)
	z.apply()
}

func (z *ZoomEngine) PanBy(dx, dy float64) {
	z.tx += dx
	z.ty += dy
	z.apply()
}

func (z *ZoomEngine) Reset() {
	z.scale = 1
	z.tx = 0
	z.ty = 0
	z.apply()
}

// Transform renders the current state as an SVG transform attribute value.
func (z *ZoomEngine) Transform() string {
	return fmt.Sprintf("translate(%s, %s) scale(%s)",
		svg.Num(z.tx), svg.Num(z.ty), svg.Num(z.scale))
}

func (z *ZoomEngine) apply() {
	if z.target != nil {
		z.target.Set("transform", z.Transform())
	}
}
