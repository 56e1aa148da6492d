package svg

import (
	"bytes"
	"fmt"
)

const xmlns = "http://www.w3.org/2000/svg"

// Document owns a root <svg> element with a fixed viewBox. Width and
// Height are the drawing-surface pixel dimensions the viewBox maps to.
type Document struct {
	Width  float64
	Height float64

	root *Element
}

// NewDocument creates a document whose root fills its container: the
// rendered size comes from CSS, the viewBox fixes the coordinate system.
func NewDocument(width, height float64) *Document {
	root := New("svg").
		Set("xmlns", xmlns).
		Set("width", "100%").
		Set("height", "100%").
		Set("viewBox", fmt.Sprintf("0 0 %s %s", Num(width), Num(height)))

	return &Document{
		Width:  width,
		Height: height,
		root:   root,
	}
}

func (d *Document) Root() *Element {
	return d.root
}

// Bytes serializes the document including the XML declaration.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.WriteXML(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
