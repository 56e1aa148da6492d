package canvas

import (
	"testing"

	"github.com/kapu/pedigree-chart-go/internal/constants"
	"github.com/kapu/pedigree-chart-go/internal/svg"
)

func TestZoomByClampsToBounds(t *testing.T) {
	zoom := newZoomEngine(svg.Group())

	zoom.ZoomBy(1e6, 0, 0)
	if zoom.Scale() != constants.Canvas.MaxScale {
		t.Fatalf("expected clamp to max scale, got %g", zoom.Scale())
	}

	zoom.ZoomBy(1e-9, 0, 0)
	if zoom.Scale() != constants.Canvas.MinScale {
		t.Fatalf("expected clamp to min scale, got %g", zoom.Scale())
	}
}

func TestZoomByKeepsFixedPointStable(t *testing.T) {
	zoom := newZoomEngine(svg.Group())

	zoom.ZoomBy(2, 100, 50)

	if zoom.Scale() != 2 {
		t.Fatalf("expected doubled scale, got %g", zoom.Scale())
	}
	tx, ty := zoom.Translation()
	if tx != -100 || ty != -50 {
		t.Fatalf("expected translation to keep (100, 50) fixed, got (%g, %g)", tx, ty)
	}
}

func TestZoomByAtBoundaryLeavesTranslationAlone(t *testing.T) {
	zoom := newZoomEngine(svg.Group())
	zoom.PanBy(7, 9)
	zoom.ZoomTo(constants.Canvas.MaxScale)

	zoom.ZoomBy(2, 400, 300)

	tx, ty := zoom.Translation()
	if tx != 7 || ty != 9 {
		t.Fatalf("expected no drift when already at max scale, got (%g, %g)", tx, ty)
	}
}

func TestPanByAccumulates(t *testing.T) {
	zoom := newZoomEngine(svg.Group())

	zoom.PanBy(10, 5)
	zoom.PanBy(-4, 2)

	tx, ty := zoom.Translation()
	if tx != 6 || ty != 7 {
		t.Fatalf("expected accumulated pan, got (%g, %g)", tx, ty)
	}
}

func TestResetRestoresIdentity(t *testing.T) {
	zoom := newZoomEngine(svg.Group())
	zoom.ZoomBy(2, 100, 50)
	zoom.PanBy(10, 10)

	zoom.Reset()

	if zoom.Transform() != "translate(0, 0) scale(1)" {
		t.Fatalf("expected identity transform, got %q", zoom.Transform())
	}
}

func TestTransformIsAppliedToTarget(t *testing.T) {
	target := svg.Group()
	zoom := newZoomEngine(target)

	zoom.ZoomTo(2)
	zoom.PanBy(3, 4)

	transform, ok := target.Get("transform")
	if !ok {
		t.Fatalf("expected transform attribute on the target")
	}
	if transform != "translate(3, 4) scale(2)" {
		t.Fatalf("unexpected transform attribute: %q", transform)
	}
}
