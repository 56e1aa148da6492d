package service

import (
	"github.com/kapu/pedigree-chart-go/internal/constants"
	"github.com/kapu/pedigree-chart-go/internal/domain"
	"github.com/kapu/pedigree-chart-go/internal/util"
	"go.uber.org/zap"
)

// ChartNode pairs an ancestor slot with its display record. The same
// record may back several slots when lineages collapse.
type ChartNode struct {
	Entry  *domain.AncestorEntry
	Record *domain.DisplayRecord
}

// PositionedRecord is a chart node with resolved card geometry.
type PositionedRecord struct {
	Record     *domain.DisplayRecord
	Ahnentafel int
	X          float64
	Y          float64
	Width      float64
	Height     float64
}

// ChartLayout is the arranged chart. ByNumber indexes slots by their
// ahnentafel number so connectors can find parents at 2n and 2n+1.
type ChartLayout struct {
	Nodes    []*PositionedRecord
	ByNumber map[int]*PositionedRecord
	Width    float64
	Height   float64
}

// BuildNodes pairs ancestor entries with their records by identifier.
// Entries whose person has no record are dropped.
func BuildNodes(entries []*domain.AncestorEntry, records []*domain.DisplayRecord) []*ChartNode {
	byIdentifier := make(map[string]*domain.DisplayRecord, len(records))
	for _, record := range records {
		byIdentifier[record.Identifier] = record
	}

	nodes := make([]*ChartNode, 0, len(entries))
	for _, entry := range entries {
		if entry == nil || entry.Person == nil {
			continue
		}
		record := byIdentifier[entry.Person.Identifier]
		if record == nil {
			continue
		}
		nodes = append(nodes, &ChartNode{Entry: entry, Record: record})
	}
	return nodes
}

// LayoutEngine places ancestor cards on a binary generation grid.
// Vertical charts grow upward from the subject, horizontal charts grow
// to the right.
type LayoutEngine struct {
	orientation domain.Orientation
	logger      *zap.Logger
}

func NewLayoutEngine(orientation domain.Orientation, logger *zap.Logger) *LayoutEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !orientation.IsValid() {
		orientation = domain.OrientationVertical
	}
	return &LayoutEngine{orientation: orientation, logger: logger}
}

func (le *LayoutEngine) Orientation() domain.Orientation {
	return le.orientation
}

func (le *LayoutEngine) Arrange(nodes []*ChartNode) *ChartLayout {
	layout := &ChartLayout{
		Nodes:    make([]*PositionedRecord, 0, len(nodes)),
		ByNumber: make(map[int]*PositionedRecord, len(nodes)),
	}

	maxGeneration := 0
	for _, node := range nodes {
		if node == nil || node.Entry == nil {
			continue
		}
		maxGeneration = util.Max(maxGeneration, node.Entry.Generation())
	}

	cellWidth := constants.Chart.CardWidth + constants.Chart.HorizontalGap
	cellHeight := constants.Chart.CardHeight + constants.Chart.VerticalGap
	leafCount := 1 << maxGeneration

	if le.orientation == domain.OrientationHorizontal {
		layout.Width = float64(maxGeneration+1)*cellWidth - constants.Chart.HorizontalGap
		layout.Height = float64(leafCount) * cellHeight
	} else {
		layout.Width = float64(leafCount) * cellWidth
		layout.Height = float64(maxGeneration+1)*cellHeight - constants.Chart.VerticalGap
	}

	for _, node := range nodes {
		if node == nil || node.Entry == nil || node.Record == nil {
			continue
		}

		generation := node.Entry.Generation()
		index := node.Entry.IndexInGeneration()
		positioned := &PositionedRecord{
			Record:     node.Record,
			Ahnentafel: node.Entry.Ahnentafel,
			Width:      constants.Chart.CardWidth,
			Height:     constants.Chart.CardHeight,
		}

		if le.orientation == domain.OrientationHorizontal {
			// Subject on the left, one column per generation.
			slot := layout.Height / float64(int(1)<<generation)
			positioned.X = float64(generation) * cellWidth
			positioned.Y = (float64(index)+0.5)*slot - positioned.Height/2
		} else {
			// Subject at the bottom, oldest generation on top.
			slot := layout.Width / float64(int(1)<<generation)
			positioned.X = (float64(index)+0.5)*slot - positioned.Width/2
			positioned.Y = float64(maxGeneration-generation) * cellHeight
		}

		layout.Nodes = append(layout.Nodes, positioned)
		layout.ByNumber[positioned.Ahnentafel] = positioned
	}

	le.logger.Debug("Chart arranged",
		zap.String("orientation", le.orientation.String()),
		zap.Int("generations", maxGeneration+1),
		zap.Int("cards", len(layout.Nodes)),
	)
	return layout
}
