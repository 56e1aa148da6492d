package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestProviderErrorCarriesContext(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewProviderError("ancestor query failed", "GetAncestors", "I1", cause)

	if err.Code != CodeProvider || err.StatusCode != 502 {
		t.Fatalf("unexpected classification: %s / %d", err.Code, err.StatusCode)
	}
	if err.Operation != "GetAncestors" || err.Identifier != "I1" {
		t.Fatalf("unexpected context fields: %+v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
}

func TestValidationErrorDefaultsToBadRequest(t *testing.T) {
	err := NewValidationError("unknown event kind", "type", "swipe")

	if err.StatusCode != 400 || err.Code != CodeValidation {
		t.Fatalf("unexpected classification: %s / %d", err.Code, err.StatusCode)
	}
	if err.Field != "type" || err.Value != "swipe" {
		t.Fatalf("unexpected field context: %+v", err)
	}
	if err.Context["field"] != "type" {
		t.Fatalf("expected field mirrored into context, got %v", err.Context)
	}
}

func TestChartErrorWithCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := NewChartError("render failed", CodeChartError, 500, nil).WithCause(cause)

	if err.Error() != "render failed: boom" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}

	bare := NewChartError("render failed", CodeChartError, 500, nil)
	if bare.Error() != "render failed" {
		t.Fatalf("unexpected bare message: %q", bare.Error())
	}
}

func TestExportErrorKeepsFormat(t *testing.T) {
	err := NewExportError("raster failed", "png", fmt.Errorf("parse error"))
	if err.Format != "png" || err.Code != CodeExport {
		t.Fatalf("unexpected export error: %+v", err)
	}
}
