package canvas

import (
	"sync"
	"time"

	"github.com/kapu/pedigree-chart-go/internal/constants"
)

// Overlay is the transient hint surface the host supplies. Implementations
// must tolerate Hide without a preceding Show.
type Overlay interface {
	Show(text string)
	Hide()
}

// NopOverlay ignores all hint traffic. Useful for offline rendering where
// no interaction feedback exists.
type NopOverlay struct{}

func (NopOverlay) Show(string) {}
func (NopOverlay) Hide()       {}

// overlayController schedules overlay show/hide as cancellable tasks. A
// new show cancels any pending hide, so a hint arriving during the hide
// delay of a previous one cannot flicker.
type overlayController struct {
	mu        sync.Mutex
	overlay   Overlay
	hideTimer *time.Timer

	showDuration time.Duration
	hideDelay    time.Duration
}

func newOverlayController(overlay Overlay) *overlayController {
	return &overlayController{
		overlay:      overlay,
		showDuration: constants.Canvas.OverlayShowDuration,
		hideDelay:    constants.Canvas.OverlayHideDelay,
	}
}

// flash shows a hint and schedules its auto-hide after the display
// duration plus the hide delay.
func (oc *overlayController) flash(text string) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	oc.cancelLocked()
	oc.overlay.Show(text)
	oc.hideTimer = time.AfterFunc(oc.showDuration+oc.hideDelay, oc.hide)
}

// show displays a hint without scheduling a hide; a later gesture decides.
func (oc *overlayController) show(text string) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	oc.cancelLocked()
	oc.overlay.Show(text)
}

func (oc *overlayController) hideAfter(delay time.Duration) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	oc.cancelLocked()
	oc.hideTimer = time.AfterFunc(delay, oc.hide)
}

func (oc *overlayController) hideNow() {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	oc.cancelLocked()
	oc.overlay.Hide()
}

func (oc *overlayController) hide() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.overlay.Hide()
}

func (oc *overlayController) cancelLocked() {
	if oc.hideTimer != nil {
		oc.hideTimer.Stop()
		oc.hideTimer = nil
	}
}

// wireInteraction installs the built-in gesture handling:
//
//   - context menus are suppressed
//   - wheel without the modifier key shows the zoom hint instead of
//     zooming, so plain page scrolling is never hijacked
//   - ending a touch with fewer than two points hides the overlay after
//     the hide delay
//   - a two-finger move pans and hides the overlay immediately; a
//     one-finger move only shows the move hint
//   - clicks whose default action was prevented stop propagating, so a
//     drag release does not double as a node click
func (c *Controller) wireInteraction() {
	c.listeners.On(EventContextMenu, func(ev *Event) {
		ev.SetHandled()
	})

	c.listeners.On(EventWheel, func(ev *Event) {
		if !ev.Modifier {
			c.overlay.flash(c.config.Labels.ZoomHint)
			ev.SetHandled()
			return
		}
		factor := constants.Canvas.WheelZoomStep
		if ev.DeltaY > 0 {
			factor = 1 / factor
		}
		c.zoom.ZoomBy(factor, ev.X, ev.Y)
	})

	c.listeners.On(EventTouchEnd, func(ev *Event) {
		if ev.Touches < 2 {
			c.overlay.hideAfter(c.overlay.hideDelay)
		}
	})

	c.listeners.On(EventTouchMove, func(ev *Event) {
		if ev.Touches >= 2 {
			c.overlay.hideNow()
			c.zoom.PanBy(ev.DeltaX, ev.DeltaY)
			return
		}
		c.overlay.show(c.config.Labels.MoveHint)
	})

	c.listeners.On(EventClick, func(ev *Event) {
		if ev.DefaultPrevented {
			ev.SetHandled()
		}
	})
}
