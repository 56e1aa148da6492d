package canvas

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kapu/pedigree-chart-go/internal/svg"
)

// ErrUnsupportedFormat is returned for export format keys no exporter is
// registered under. Unknown formats never fall back to a default.
var ErrUnsupportedFormat = errors.New("unsupported export format")

const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Exporter serializes the current chart document to one output format.
// Instances are single-use snapshots of the document reference; Export may
// be called once the orchestrator has finished drawing.
type Exporter interface {
	Format() string
	Export(w io.Writer) error
}

// ExporterFunc builds a fresh exporter for a document. The factory calls
// it per Export request, so two requests never share an instance.
type ExporterFunc func(doc *svg.Document) Exporter

func (c *Controller) registerBuiltinExporters() {
	c.exporters[FormatSVG] = func(doc *svg.Document) Exporter {
		return &SVGExporter{doc: doc}
	}
	c.exporters[FormatPNG] = func(doc *svg.Document) Exporter {
		return NewPNGExporter(doc)
	}
}

// RegisterExporter adds or replaces the exporter for a format key. This is
// the single extension point for new formats.
func (c *Controller) RegisterExporter(format string, fn ExporterFunc) error {
	key := strings.ToLower(strings.TrimSpace(format))
	if key == "" {
		return fmt.Errorf("export format must not be empty")
	}
	if fn == nil {
		return fmt.Errorf("exporter for %q must not be nil", format)
	}
	c.exporters[key] = fn
	return nil
}

// Export returns a fresh exporter for the requested format. Callable from
// Initialized onward; the format key is case-insensitive.
func (c *Controller) Export(format string) (Exporter, error) {
	if c.state == StateUninitialized {
		return nil, fmt.Errorf("%w: call Initialize before Export", ErrNotInitialized)
	}

	fn, ok := c.exporters[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return fn(c.doc), nil
}
