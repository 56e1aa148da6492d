package svg

import (
	"encoding/xml"
	"fmt"
	"io"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// WriteXML serializes the document tree. Escaping is delegated to
// encoding/xml; attribute and child order follow the tree as built.
func (d *Document) WriteXML(w io.Writer) error {
	if d == nil || d.root == nil {
		return fmt.Errorf("document has no root")
	}

	if _, err := io.WriteString(w, xmlHeader); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := encodeElement(enc, d.root); err != nil {
		return err
	}
	return enc.Flush()
}

func encodeElement(enc *xml.Encoder, el *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: el.Tag}}
	for _, a := range el.Attrs {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: a.Name},
			Value: a.Value,
		})
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if el.Text != "" {
		if err := enc.EncodeToken(xml.CharData(el.Text)); err != nil {
			return err
		}
	}
	for _, child := range el.Children {
		if err := encodeElement(enc, child); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
