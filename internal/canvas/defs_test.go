package canvas

import (
	"testing"

	"github.com/kapu/pedigree-chart-go/internal/svg"
)

func TestDefsRegisterRejectsDuplicates(t *testing.T) {
	registry := newDefsRegistry(svg.Defs())

	if err := registry.Register("fill-0", svg.LinearGradient("fill-0")); err != nil {
		t.Fatalf("expected first registration to succeed, got %v", err)
	}
	if err := registry.Register("fill-0", svg.LinearGradient("fill-0")); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if registry.Len() != 1 {
		t.Fatalf("expected registry unchanged after rejected duplicate, got %d", registry.Len())
	}
}

func TestDefsRegisterValidatesInput(t *testing.T) {
	registry := newDefsRegistry(svg.Defs())

	if err := registry.Register("", svg.Group()); err == nil {
		t.Fatalf("expected empty id to be rejected")
	}
	if err := registry.Register("marker", nil); err == nil {
		t.Fatalf("expected nil definition to be rejected")
	}
}

func TestDefsRegisterAttachesDefinition(t *testing.T) {
	defsEl := svg.Defs()
	registry := newDefsRegistry(defsEl)

	def := svg.Group()
	if err := registry.Register("marker", def); err != nil {
		t.Fatalf("expected registration to succeed, got %v", err)
	}

	if def.ID() != "marker" {
		t.Fatalf("expected id applied to the definition, got %q", def.ID())
	}
	if len(defsEl.Children) != 1 || defsEl.Children[0] != def {
		t.Fatalf("expected definition appended to the defs element")
	}

	found, ok := registry.Lookup("marker")
	if !ok || found != def {
		t.Fatalf("expected lookup to return the registered definition")
	}
	if !registry.Has("marker") || registry.Has("other") {
		t.Fatalf("unexpected membership results")
	}
}

func TestDefsURLBuildsPaintReference(t *testing.T) {
	registry := newDefsRegistry(svg.Defs())
	if ref := registry.URL("fill-0"); ref != "url(#fill-0)" {
		t.Fatalf("unexpected paint reference: %q", ref)
	}
}
