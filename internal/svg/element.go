// Package svg is a minimal SVG document model: elements with ordered
// attributes, a handful of shape constructors, and XML serialization.
// It exists so the chart canvas can own its scene graph directly instead
// of going through a full vector-graphics stack.
package svg

import (
	"strconv"
	"strings"
)

type Attr struct {
	Name  string
	Value string
}

// Element is one node of the document tree. Attribute order is preserved
// so serialized output is stable.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Text     string
}

func New(tag string) *Element {
	return &Element{Tag: tag}
}

// Set upserts an attribute, keeping the original position on update.
func (e *Element) Set(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) ID() string {
	id, _ := e.Get("id")
	return id
}

func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

func (e *Element) SetText(text string) *Element {
	e.Text = text
	return e
}

// AddClass appends a class token unless already present.
func (e *Element) AddClass(name string) *Element {
	current, _ := e.Get("class")
	if current == "" {
		return e.Set("class", name)
	}
	for _, c := range strings.Fields(current) {
		if c == name {
			return e
		}
	}
	return e.Set("class", current+" "+name)
}

func (e *Element) HasClass(name string) bool {
	current, _ := e.Get("class")
	for _, c := range strings.Fields(current) {
		if c == name {
			return true
		}
	}
	return false
}

// CountByTag walks the subtree counting elements with the given tag.
func (e *Element) CountByTag(tag string) int {
	count := 0
	if e.Tag == tag {
		count++
	}
	for _, c := range e.Children {
		count += c.CountByTag(tag)
	}
	return count
}

// Num formats a coordinate with up to two decimals, trimming trailing
// zeros so whole numbers stay short.
func Num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func Group() *Element {
	return New("g")
}

func Defs() *Element {
	return New("defs")
}

func Rect(x, y, width, height float64) *Element {
	return New("rect").
		Set("x", Num(x)).
		Set("y", Num(y)).
		Set("width", Num(width)).
		Set("height", Num(height))
}

func Circle(cx, cy, r float64) *Element {
	return New("circle").
		Set("cx", Num(cx)).
		Set("cy", Num(cy)).
		Set("r", Num(r))
}

func Line(x1, y1, x2, y2 float64) *Element {
	return New("line").
		Set("x1", Num(x1)).
		Set("y1", Num(y1)).
		Set("x2", Num(x2)).
		Set("y2", Num(y2))
}

func Path(d string) *Element {
	return New("path").Set("d", d)
}

func Text(x, y float64, content string) *Element {
	return New("text").
		Set("x", Num(x)).
		Set("y", Num(y)).
		SetText(content)
}

func Image(x, y, width, height float64, href string) *Element {
	return New("image").
		Set("x", Num(x)).
		Set("y", Num(y)).
		Set("width", Num(width)).
		Set("height", Num(height)).
		Set("href", href)
}

func Title(content string) *Element {
	return New("title").SetText(content)
}

// Anchor wraps children in a link element. Empty href yields a plain group
// so callers need not branch.
func Anchor(href string, children ...*Element) *Element {
	if href == "" {
		return Group().Append(children...)
	}
	return New("a").Set("href", href).Append(children...)
}

// GradientStop is one color stop of a gradient, offset in [0, 1].
type GradientStop struct {
	Offset  float64
	Color   string
	Opacity float64
}

// LinearGradient builds a vertical linear gradient definition.
func LinearGradient(id string, stops ...GradientStop) *Element {
	grad := New("linearGradient").
		Set("id", id).
		Set("x1", "0").
		Set("y1", "0").
		Set("x2", "0").
		Set("y2", "1")
	for _, s := range stops {
		stop := New("stop").
			Set("offset", Num(s.Offset)).
			Set("stop-color", s.Color)
		if s.Opacity > 0 && s.Opacity < 1 {
			stop.Set("stop-opacity", Num(s.Opacity))
		}
		grad.Append(stop)
	}
	return grad
}

// URLRef turns a definition id into a url(#id) paint reference.
func URLRef(id string) string {
	return "url(#" + id + ")"
}

// IDFromRef extracts the id from a url(#id) reference, "" if malformed.
func IDFromRef(ref string) string {
	if !strings.HasPrefix(ref, "url(#") || !strings.HasSuffix(ref, ")") {
		return ""
	}
	return ref[len("url(#") : len(ref)-1]
}
