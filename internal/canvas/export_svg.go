package canvas

import (
	"fmt"
	"io"

	"github.com/kapu/pedigree-chart-go/internal/svg"
)

// SVGExporter writes the document as a standalone SVG file.
type SVGExporter struct {
	doc *svg.Document
}

func (e *SVGExporter) Format() string {
	return FormatSVG
}

func (e *SVGExporter) Export(w io.Writer) error {
	if e.doc == nil {
		return fmt.Errorf("no document to export")
	}
	return e.doc.WriteXML(w)
}
