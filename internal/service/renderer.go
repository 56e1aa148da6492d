package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kapu/pedigree-chart-go/internal/canvas"
	"github.com/kapu/pedigree-chart-go/internal/constants"
	"github.com/kapu/pedigree-chart-go/internal/domain"
	"github.com/kapu/pedigree-chart-go/internal/svg"
	"github.com/kapu/pedigree-chart-go/internal/util"
	"go.uber.org/zap"
)

const (
	cardStroke      = "#9aa5b1"
	connectorStroke = "#b0b8c1"
)

// generationPalette cycles card fill gradients by generation. Start
// doubles as the record's primary color.
var generationPalette = []struct {
	Start string
	End   string
}{
	{"#eef4fb", "#c9dcf0"},
	{"#fdf2e4", "#f3dcb8"},
	{"#eaf6ea", "#c8e6c9"},
	{"#f9ecf2", "#e8c7d8"},
	{"#f1eefb", "#d5cdee"},
	{"#edf7f7", "#c5e4e6"},
}

// ChartRenderer draws an arranged layout into a canvas controller's
// content group: connector paths first, then one card per slot.
type ChartRenderer struct {
	logger *zap.Logger
}

func NewChartRenderer(logger *zap.Logger) *ChartRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChartRenderer{logger: logger}
}

// ColorFor returns the primary color of a generation's gradient.
func (cr *ChartRenderer) ColorFor(generation int) string {
	if generation < 0 {
		generation = 0
	}
	return generationPalette[generation%len(generationPalette)].Start
}

func (cr *ChartRenderer) Render(ctrl *canvas.Controller, layout *ChartLayout) error {
	if ctrl == nil || ctrl.ContentGroup() == nil {
		return fmt.Errorf("%w: render needs an interaction-ready canvas", canvas.ErrNotInitialized)
	}
	if layout == nil || len(layout.Nodes) == 0 {
		cr.logger.Debug("Nothing to render")
		return nil
	}

	content := ctrl.ContentGroup()
	orientation := ctrl.Config().LayoutOrientation
	rtl := ctrl.Config().TextDirection == canvas.DirectionRTL

	connectors := svg.Group().AddClass("connectors")
	for _, node := range layout.Nodes {
		for _, parentNumber := range []int{node.Ahnentafel * 2, node.Ahnentafel*2 + 1} {
			parent, ok := layout.ByNumber[parentNumber]
			if !ok {
				continue
			}
			connectors.Append(cr.connector(node, parent, orientation))
		}
	}
	content.Append(connectors)

	for _, node := range layout.Nodes {
		gradientID, err := cr.ensureGradient(ctrl, node.Record.Generation)
		if err != nil {
			return err
		}
		content.Append(cr.drawCard(node, gradientID, rtl))
	}

	cr.logger.Debug("Chart rendered",
		zap.Int("cards", len(layout.Nodes)),
		zap.Int("definitions", ctrl.Defs().Len()),
	)
	return nil
}

// ensureGradient registers the generation's fill gradient on first use.
// The defs registry rejects duplicate ids, so registration is guarded by
// a lookup rather than re-registered per card.
func (cr *ChartRenderer) ensureGradient(ctrl *canvas.Controller, generation int) (string, error) {
	if generation < 0 {
		generation = 0
	}
	idx := generation % len(generationPalette)
	id := "generation-fill-" + strconv.Itoa(idx)
	if ctrl.Defs().Has(id) {
		return id, nil
	}

	entry := generationPalette[idx]
	gradient := svg.LinearGradient(id,
		svg.GradientStop{Offset: 0, Color: entry.Start},
		svg.GradientStop{Offset: 1, Color: entry.End},
	)
	if err := ctrl.Defs().Register(id, gradient); err != nil {
		return "", err
	}
	return id, nil
}

func (cr *ChartRenderer) drawCard(node *PositionedRecord, gradientID string, rtl bool) *svg.Element {
	rec := node.Record
	pad := constants.Chart.CardPadding
	imageSize := constants.Chart.ImageSize

	box := svg.Rect(0, 0, node.Width, node.Height).
		Set("rx", "6").
		Set("fill", svg.URLRef(gradientID)).
		Set("stroke", cardStroke).
		Set("stroke-width", "1")

	textX := pad
	hasImage := rec.HasThumbnail()
	if hasImage && !rtl {
		textX = pad + imageSize + pad
	}
	if rtl {
		textX = node.Width - pad
		if hasImage {
			textX = node.Width - pad - imageSize - pad
		}
	}

	name := rec.DisplayName
	if name == "" {
		name = rec.Identifier
	}
	nameText := svg.Text(textX, pad+16, util.TruncateString(name, constants.StringLimits.CardNameLine)).
		AddClass("card-name").
		Set("font-size", "13").
		Set("font-weight", "bold")
	if rtl {
		nameText.Set("text-anchor", "end")
	}

	parts := []*svg.Element{svg.Title(cr.tooltip(rec)), box}

	if hasImage {
		imageX := pad
		if rtl {
			imageX = node.Width - pad - imageSize
		}
		parts = append(parts, svg.Image(imageX, (node.Height-imageSize)/2, imageSize, imageSize, rec.ThumbnailURL).
			Set("preserveAspectRatio", "xMidYMid meet"))
	}

	parts = append(parts, nameText)

	if rec.TimespanLabel != "" {
		timespan := svg.Text(textX, pad+34, rec.TimespanLabel).
			AddClass("card-lifespan").
			Set("font-size", "11").
			Set("fill", "#555")
		if rtl {
			timespan.Set("text-anchor", "end")
		}
		parts = append(parts, timespan)
	}

	if rec.HasAlternateName() {
		alt := svg.Text(textX, pad+52, util.TruncateString(strings.Join(rec.AlternativeNames, " "), constants.StringLimits.CardAltLine)).
			AddClass("card-alt-name").
			Set("font-size", "11").
			Set("fill", "#555")
		if rec.IsAlternativeRtl {
			alt.Set("direction", "rtl")
		}
		if rtl {
			alt.Set("text-anchor", "end")
		}
		parts = append(parts, alt)
	}

	return svg.Group().
		AddClass("person-card").
		AddClass("generation-"+strconv.Itoa(rec.Generation)).
		Set("transform", fmt.Sprintf("translate(%s, %s)", svg.Num(node.X), svg.Num(node.Y))).
		Set("data-ahnentafel", strconv.Itoa(node.Ahnentafel)).
		Append(svg.Anchor(rec.ViewURL, parts...))
}

func (cr *ChartRenderer) tooltip(rec *domain.DisplayRecord) string {
	if rec.TimespanLabel == "" {
		return rec.DisplayName
	}
	if rec.DisplayName == "" {
		return rec.TimespanLabel
	}
	return rec.DisplayName + " (" + rec.TimespanLabel + ")"
}

// connector routes an elbow path from a child card to one parent card.
func (cr *ChartRenderer) connector(child, parent *PositionedRecord, orientation domain.Orientation) *svg.Element {
	var d string
	if orientation == domain.OrientationHorizontal {
		childX := child.X + child.Width
		childY := child.Y + child.Height/2
		parentY := parent.Y + parent.Height/2
		midX := (childX + parent.X) / 2
		d = fmt.Sprintf("M %s %s L %s %s L %s %s L %s %s",
			svg.Num(childX), svg.Num(childY),
			svg.Num(midX), svg.Num(childY),
			svg.Num(midX), svg.Num(parentY),
			svg.Num(parent.X), svg.Num(parentY),
		)
	} else {
		childX := child.X + child.Width/2
		parentX := parent.X + parent.Width/2
		parentY := parent.Y + parent.Height
		midY := (child.Y + parentY) / 2
		d = fmt.Sprintf("M %s %s L %s %s L %s %s L %s %s",
			svg.Num(childX), svg.Num(child.Y),
			svg.Num(childX), svg.Num(midY),
			svg.Num(parentX), svg.Num(midY),
			svg.Num(parentX), svg.Num(parentY),
		)
	}

	return svg.Path(d).
		AddClass("connector").
		Set("fill", "none").
		Set("stroke", connectorStroke).
		Set("stroke-width", "1")
}
