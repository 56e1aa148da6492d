// Package adapter converts between wire payloads and domain types: inbound
// interaction events from chart clients, outbound overlay and transform
// messages, and display-record text formatting.
package adapter

import (
	"encoding/json"

	"github.com/kapu/pedigree-chart-go/internal/canvas"
	"github.com/kapu/pedigree-chart-go/internal/util"
	"github.com/kapu/pedigree-chart-go/pkg/errors"
)

// wireEvent is the JSON shape clients send over the event channel.
type wireEvent struct {
	Type             string  `json:"type"`
	Touches          int     `json:"touches"`
	Modifier         bool    `json:"modifier"`
	DefaultPrevented bool    `json:"default_prevented"`
	DeltaX           float64 `json:"delta_x"`
	DeltaY           float64 `json:"delta_y"`
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
}

// EventAdapter converts client payloads into canvas events.
type EventAdapter struct{}

func NewEventAdapter() *EventAdapter {
	return &EventAdapter{}
}

// ParseEvent decodes one inbound payload. Unknown event kinds are an
// error, not a silent drop.
func (ea *EventAdapter) ParseEvent(raw []byte) (*canvas.Event, error) {
	if len(raw) == 0 {
		return nil, errors.NewValidationError("empty event payload", "payload", "")
	}

	var wire wireEvent
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, errors.NewValidationError("malformed event payload", "payload", util.TruncateString(string(raw), 100))
	}

	kind, err := canvas.ParseEventKind(wire.Type)
	if err != nil {
		return nil, errors.NewValidationError("unknown event kind", "type", wire.Type)
	}

	return &canvas.Event{
		Kind:             kind,
		Touches:          wire.Touches,
		Modifier:         wire.Modifier,
		DefaultPrevented: wire.DefaultPrevented,
		DeltaX:           wire.DeltaX,
		DeltaY:           wire.DeltaY,
		X:                wire.X,
		Y:                wire.Y,
	}, nil
}

// OverlayMessage is the outbound hint-overlay instruction.
type OverlayMessage struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Text   string `json:"text,omitempty"`
}

func NewOverlayShowMessage(text string) OverlayMessage {
	return OverlayMessage{Type: "overlay", Action: "show", Text: text}
}

func NewOverlayHideMessage() OverlayMessage {
	return OverlayMessage{Type: "overlay", Action: "hide"}
}

// TransformMessage carries the content group's pan/zoom state after an
// event round, so clients can mirror it without reparsing the document.
type TransformMessage struct {
	Type       string  `json:"type"`
	Scale      float64 `json:"scale"`
	TranslateX float64 `json:"translate_x"`
	TranslateY float64 `json:"translate_y"`
	Transform  string  `json:"transform"`
}

func NewTransformMessage(zoom *canvas.ZoomEngine) TransformMessage {
	tx, ty := zoom.Translation()
	return TransformMessage{
		Type:       "transform",
		Scale:      zoom.Scale(),
		TranslateX: tx,
		TranslateY: ty,
		Transform:  zoom.Transform(),
	}
}
