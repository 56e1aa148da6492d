package service

import (
	"testing"

	"github.com/kapu/pedigree-chart-go/internal/domain"
	"go.uber.org/zap"
)

func trioNodes() []*ChartNode {
	subject := &domain.Individual{Identifier: "I1"}
	father := &domain.Individual{Identifier: "I2"}
	mother := &domain.Individual{Identifier: "I3"}

	entries := []*domain.AncestorEntry{
		{Ahnentafel: 1, Person: subject},
		{Ahnentafel: 2, Person: father},
		{Ahnentafel: 3, Person: mother},
	}
	records := []*domain.DisplayRecord{
		{ID: 1, Identifier: "I1"},
		{ID: 2, Identifier: "I2"},
		{ID: 3, Identifier: "I3"},
	}
	return BuildNodes(entries, records)
}

func TestBuildNodesPairsEntriesWithRecords(t *testing.T) {
	entries := []*domain.AncestorEntry{
		{Ahnentafel: 1, Person: &domain.Individual{Identifier: "I1"}},
		nil,
		{Ahnentafel: 2, Person: nil},
		{Ahnentafel: 3, Person: &domain.Individual{Identifier: "I3"}},
	}
	records := []*domain.DisplayRecord{
		{ID: 1, Identifier: "I1"},
	}

	nodes := BuildNodes(entries, records)

	if len(nodes) != 1 {
		t.Fatalf("expected only slots with both person and record, got %d", len(nodes))
	}
	if nodes[0].Entry.Ahnentafel != 1 || nodes[0].Record.Identifier != "I1" {
		t.Fatalf("unexpected pairing: %+v", nodes[0])
	}
}

func TestBuildNodesSharesRecordAcrossCollapsedSlots(t *testing.T) {
	shared := &domain.Individual{Identifier: "I9"}
	entries := []*domain.AncestorEntry{
		{Ahnentafel: 4, Person: shared},
		{Ahnentafel: 6, Person: shared},
	}
	records := []*domain.DisplayRecord{{ID: 1, Identifier: "I9"}}

	nodes := BuildNodes(entries, records)

	if len(nodes) != 2 {
		t.Fatalf("expected one node per slot, got %d", len(nodes))
	}
	if nodes[0].Record != nodes[1].Record {
		t.Fatalf("expected collapsed slots to share one record")
	}
}

func TestArrangeVerticalPlacesSubjectAtBottom(t *testing.T) {
	layout := NewLayoutEngine(domain.OrientationVertical, zap.NewNop()).Arrange(trioNodes())

	if layout.Width != 560 || layout.Height != 200 {
		t.Fatalf("unexpected chart bounds: %gx%g", layout.Width, layout.Height)
	}

	subject := layout.ByNumber[1]
	if subject.X != 150 || subject.Y != 120 {
		t.Fatalf("expected subject centered at the bottom, got (%g, %g)", subject.X, subject.Y)
	}

	father := layout.ByNumber[2]
	mother := layout.ByNumber[3]
	if father.Y != 0 || mother.Y != 0 {
		t.Fatalf("expected parents in the top row, got %g and %g", father.Y, mother.Y)
	}
	if father.X != 10 || mother.X != 290 {
		t.Fatalf("expected parents split left/right, got %g and %g", father.X, mother.X)
	}
}

func TestArrangeHorizontalPlacesSubjectOnLeft(t *testing.T) {
	layout := NewLayoutEngine(domain.OrientationHorizontal, zap.NewNop()).Arrange(trioNodes())

	if layout.Width != 540 || layout.Height != 240 {
		t.Fatalf("unexpected chart bounds: %gx%g", layout.Width, layout.Height)
	}

	subject := layout.ByNumber[1]
	if subject.X != 0 || subject.Y != 80 {
		t.Fatalf("expected subject centered on the left, got (%g, %g)", subject.X, subject.Y)
	}

	father := layout.ByNumber[2]
	mother := layout.ByNumber[3]
	if father.X != 280 || mother.X != 280 {
		t.Fatalf("expected parents in the second column, got %g and %g", father.X, mother.X)
	}
	if father.Y != 20 || mother.Y != 140 {
		t.Fatalf("expected father above mother, got %g and %g", father.Y, mother.Y)
	}
}

func TestArrangeIndexesSlotsByAhnentafel(t *testing.T) {
	layout := NewLayoutEngine(domain.OrientationVertical, zap.NewNop()).Arrange(trioNodes())

	if len(layout.ByNumber) != 3 {
		t.Fatalf("expected three indexed slots, got %d", len(layout.ByNumber))
	}
	for _, number := range []int{1, 2, 3} {
		if layout.ByNumber[number] == nil {
			t.Fatalf("expected slot %d to be indexed", number)
		}
	}
	if layout.ByNumber[4] != nil {
		t.Fatalf("expected absent slots to stay unindexed")
	}
}

func TestArrangeCardsKeepConfiguredSize(t *testing.T) {
	layout := NewLayoutEngine(domain.OrientationVertical, zap.NewNop()).Arrange(trioNodes())
	for _, node := range layout.Nodes {
		if node.Width != 260 || node.Height != 80 {
			t.Fatalf("unexpected card size: %gx%g", node.Width, node.Height)
		}
	}
}

func TestNewLayoutEngineDefaultsInvalidOrientation(t *testing.T) {
	engine := NewLayoutEngine(domain.Orientation("diagonal"), zap.NewNop())
	if engine.Orientation() != domain.OrientationVertical {
		t.Fatalf("expected vertical fallback, got %q", engine.Orientation())
	}
}
