package adapter

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kapu/pedigree-chart-go/internal/canvas"
	"github.com/kapu/pedigree-chart-go/internal/domain"
	apperrors "github.com/kapu/pedigree-chart-go/pkg/errors"
	"go.uber.org/zap"
)

func TestParseEventDecodesPayload(t *testing.T) {
	adapter := NewEventAdapter()

	ev, err := adapter.ParseEvent([]byte(`{"type":"wheel","modifier":true,"delta_y":-3,"x":120,"y":45}`))
	if err != nil {
		t.Fatalf("expected payload to parse, got %v", err)
	}

	if ev.Kind != canvas.EventWheel {
		t.Fatalf("expected wheel event, got %q", ev.Kind)
	}
	if !ev.Modifier || ev.DeltaY != -3 || ev.X != 120 || ev.Y != 45 {
		t.Fatalf("unexpected event fields: %+v", ev)
	}
}

func TestParseEventRejectsEmptyPayload(t *testing.T) {
	adapter := NewEventAdapter()

	_, err := adapter.ParseEvent(nil)
	if err == nil {
		t.Fatalf("expected empty payload to be rejected")
	}

	var validation *apperrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected a validation error, got %T", err)
	}
}

func TestParseEventRejectsMalformedPayload(t *testing.T) {
	adapter := NewEventAdapter()

	_, err := adapter.ParseEvent([]byte(`{"type":`))
	if err == nil {
		t.Fatalf("expected malformed payload to be rejected")
	}
	if !strings.Contains(err.Error(), "malformed") {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestParseEventRejectsUnknownKind(t *testing.T) {
	adapter := NewEventAdapter()

	_, err := adapter.ParseEvent([]byte(`{"type":"swipe"}`))
	if err == nil {
		t.Fatalf("expected unknown kind to be rejected")
	}
	if !strings.Contains(err.Error(), "unknown event kind") {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestOverlayMessageShapes(t *testing.T) {
	show, err := json.Marshal(NewOverlayShowMessage("two fingers to move"))
	if err != nil {
		t.Fatalf("expected show message to marshal, got %v", err)
	}
	if string(show) != `{"type":"overlay","action":"show","text":"two fingers to move"}` {
		t.Fatalf("unexpected show payload: %s", show)
	}

	hide, err := json.Marshal(NewOverlayHideMessage())
	if err != nil {
		t.Fatalf("expected hide message to marshal, got %v", err)
	}
	if string(hide) != `{"type":"overlay","action":"hide"}` {
		t.Fatalf("unexpected hide payload: %s", hide)
	}
}

func TestTransformMessageMirrorsZoomState(t *testing.T) {
	ctrl, err := canvas.NewController(
		canvas.Container{Width: 800, Height: 600},
		canvas.Config{
			TextDirection:     canvas.DirectionLTR,
			LayoutOrientation: domain.OrientationVertical,
			GenerationCount:   2,
		},
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("expected controller, got %v", err)
	}
	ctrl.Initialize()
	if err := ctrl.InitializeInteraction(canvas.NopOverlay{}); err != nil {
		t.Fatalf("expected interaction setup to succeed, got %v", err)
	}

	zoom := ctrl.Zoom()
	zoom.ZoomTo(2)
	zoom.PanBy(3, 4)

	msg := NewTransformMessage(zoom)
	if msg.Type != "transform" {
		t.Fatalf("unexpected message type: %q", msg.Type)
	}
	if msg.Scale != 2 || msg.TranslateX != 3 || msg.TranslateY != 4 {
		t.Fatalf("unexpected transform state: %+v", msg)
	}
	if msg.Transform != "translate(3, 4) scale(2)" {
		t.Fatalf("unexpected transform attribute: %q", msg.Transform)
	}
}
