package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/kapu/pedigree-chart-go/internal/svg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// PNGExporter rasterizes the document: the SVG serialization is parsed
// back and scan-converted onto an RGBA canvas with a white background.
type PNGExporter struct {
	doc    *svg.Document
	Width  int
	Height int
}

func NewPNGExporter(doc *svg.Document) *PNGExporter {
	e := &PNGExporter{doc: doc}
	if doc != nil {
		e.Width = int(doc.Width)
		e.Height = int(doc.Height)
	}
	return e
}

func (e *PNGExporter) Format() string {
	return FormatPNG
}

func (e *PNGExporter) Export(w io.Writer) error {
	if e.doc == nil {
		return fmt.Errorf("no document to export")
	}
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Errorf("raster size must be positive, got %dx%d", e.Width, e.Height)
	}

	// The document carries CSS-relative dimensions; the raster parser
	// needs absolute pixel values.
	root := e.doc.Root()
	origWidth, _ := root.Get("width")
	origHeight, _ := root.Get("height")
	root.Set("width", svg.Num(float64(e.Width)))
	root.Set("height", svg.Num(float64(e.Height)))
	data, err := e.doc.Bytes()
	root.Set("width", origWidth)
	root.Set("height", origHeight)
	if err != nil {
		return fmt.Errorf("serialize for raster: %w", err)
	}

	// Unsupported elements (text, anchors, embedded images) rasterize as
	// gaps rather than failing the whole export.
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return fmt.Errorf("parse for raster: %w", err)
	}
	icon.SetTarget(0, 0, float64(e.Width), float64(e.Height))

	img := image.NewRGBA(image.Rect(0, 0, e.Width, e.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(e.Width, e.Height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(e.Width, e.Height, scanner), 1.0)

	return png.Encode(w, img)
}
