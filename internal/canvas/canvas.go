// Package canvas owns the chart drawing surface: the SVG document, its
// reusable-definitions registry, the pan/zoom transform of the content
// group, the pointer/gesture wiring, and pluggable export. Chart nodes
// themselves are drawn by the orchestrator through the accessors; the
// controller never inspects what it carries.
package canvas

import (
	"errors"
	"fmt"

	"github.com/kapu/pedigree-chart-go/internal/svg"
	"go.uber.org/zap"
)

// ErrNotInitialized signals controller methods invoked before Initialize.
// This is a programmer error, not a runtime condition to tolerate.
var ErrNotInitialized = errors.New("canvas not initialized")

type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateInteractionReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateInteractionReady:
		return "interaction-ready"
	default:
		return "unknown"
	}
}

// Controller is the interactive rendering substrate of one chart. One
// instance per rendered chart; its lifetime ends with the host page, so
// no disposal state exists.
type Controller struct {
	container Container
	config    Config
	logger    *zap.Logger

	state     State
	doc       *svg.Document
	defs      *DefsRegistry
	content   *svg.Element
	zoom      *ZoomEngine
	listeners *ListenerSet
	overlay   *overlayController
	exporters map[string]ExporterFunc
}

func NewController(container Container, cfg Config, logger *zap.Logger) (*Controller, error) {
	if err := container.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Controller{
		container: container,
		config:    cfg,
		logger:    logger,
		state:     StateUninitialized,
		listeners: NewListenerSet(),
		exporters: make(map[string]ExporterFunc),
	}
	c.registerBuiltinExporters()

	logger.Info("Canvas controller created",
		zap.Float64("width", container.Width),
		zap.Float64("height", container.Height),
		zap.String("direction", string(cfg.TextDirection)),
		zap.String("orientation", cfg.LayoutOrientation.String()),
		zap.Int("generations", cfg.GenerationCount),
	)
	return c, nil
}

// Initialize creates the drawing surface sized to the container and moves
// the controller to Initialized. Re-initialization is not supported:
// calling twice rebuilds the surface and the next InitializeInteraction
// creates a fresh content group, which is undefined behavior rather than
// a guarded condition.
func (c *Controller) Initialize() {
	c.doc = svg.NewDocument(c.container.Width, c.container.Height)

	root := c.doc.Root()
	root.AddClass("pedigree-chart")
	root.Set("style", "user-select: none; -webkit-user-select: none")

	defsEl := svg.Defs()
	root.Append(defsEl)
	c.defs = newDefsRegistry(defsEl)

	c.content = nil
	c.zoom = nil
	c.state = StateInitialized

	c.logger.Debug("Canvas surface initialized")
}

// InitializeInteraction wires pointer/gesture handling and creates the
// transformable content group. Must be called after Initialize.
func (c *Controller) InitializeInteraction(overlay Overlay) error {
	if c.state == StateUninitialized {
		return fmt.Errorf("%w: call Initialize before InitializeInteraction", ErrNotInitialized)
	}
	if overlay == nil {
		overlay = NopOverlay{}
	}

	c.content = svg.Group().AddClass("chart-content")
	c.doc.Root().Append(c.content)

	c.zoom = newZoomEngine(c.content)
	c.overlay = newOverlayController(overlay)

	if c.config.TextDirection == DirectionRTL {
		c.doc.Root().AddClass("rtl")
	}

	c.wireInteraction()
	c.state = StateInteractionReady

	c.logger.Debug("Canvas interaction initialized")
	return nil
}

// Dispatch feeds one pointer/gesture event through the listener chain.
// Callers must serialize dispatch; the controller is single-goroutine by
// contract.
func (c *Controller) Dispatch(ev *Event) {
	if ev == nil || c.state != StateInteractionReady {
		return
	}
	c.listeners.Dispatch(ev)
}

// On registers an additional listener for an event kind and returns its
// unsubscribe function. Listeners run newest-first.
func (c *Controller) On(kind EventKind, fn func(*Event)) func() {
	return c.listeners.On(kind, fn)
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Config() Config {
	return c.config
}

// Document exposes the owned surface for exporters and tests.
func (c *Controller) Document() *svg.Document {
	return c.doc
}

func (c *Controller) Root() *svg.Element {
	if c.doc == nil {
		return nil
	}
	return c.doc.Root()
}

// Defs is the definitions registry. Nil before Initialize.
func (c *Controller) Defs() *DefsRegistry {
	return c.defs
}

// Zoom is the pan/zoom engine. Nil before InitializeInteraction.
func (c *Controller) Zoom() *ZoomEngine {
	return c.zoom
}

// ContentGroup is the transformable group chart nodes are drawn into.
// Nil before InitializeInteraction.
func (c *Controller) ContentGroup() *svg.Element {
	return c.content
}
