// Renders a pedigree chart offline: individuals come from a JSON file
// instead of PostgreSQL, the export goes to a local file. Useful for
// previewing charts and debugging layout without running the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/kapu/pedigree-chart-go/internal/canvas"
	"github.com/kapu/pedigree-chart-go/internal/domain"
	"github.com/kapu/pedigree-chart-go/internal/service"
	"go.uber.org/zap"
)

// CLI flags
var (
	input       = flag.String("input", "individuals.json", "JSON file with an array of individuals")
	subject     = flag.String("subject", "", "Identifier of the chart subject")
	generations = flag.Int("generations", 4, "Number of generations to chart")
	orientation = flag.String("orientation", "vertical", "Chart orientation (vertical or horizontal)")
	direction   = flag.String("direction", "ltr", "Text direction (ltr or rtl)")
	format      = flag.String("format", "svg", "Export format (svg or png)")
	output      = flag.String("output", "", "Output file (default chart.<format>)")
	width       = flag.Int("width", 1200, "Surface width in pixels")
	height      = flag.Int("height", 900, "Surface height in pixels")
	language    = flag.String("language", "en", "Hint label language")
)

func main() {
	flag.Parse()

	if *subject == "" {
		log.Fatal("-subject is required")
	}

	byID, err := loadIndividuals(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}
	log.Printf("✓ Loaded %d individuals", len(byID))

	entries := collectAncestors(byID, *subject, *generations)
	if len(entries) == 0 {
		log.Fatalf("Subject %q not found in %s", *subject, *input)
	}
	log.Printf("✓ Collected %d ancestor slots", len(entries))

	logger := zap.NewNop()
	decomposer := service.NewNameDecomposer(logger)
	localizer := service.NewLocalizer(*language, logger)
	builder := service.NewRecordBuilder(decomposer, service.BuilderConfig{
		Preferences: domain.TreePreferences{ShowHighlightImages: true},
	}, logger)
	renderer := service.NewChartRenderer(logger)

	records := builder.BuildAll(context.Background(), entries, renderer.ColorFor)
	for i, record := range records {
		record.ID = i + 1
	}

	nodes := service.BuildNodes(entries, records)
	layout := service.NewLayoutEngine(domain.Orientation(*orientation), logger).Arrange(nodes)

	ctrl, err := canvas.NewController(
		canvas.Container{Width: float64(*width), Height: float64(*height)},
		canvas.Config{
			TextDirection:     canvas.TextDirection(*direction),
			Labels:            localizer.HintLabels(),
			LayoutOrientation: domain.Orientation(*orientation),
			GenerationCount:   *generations,
		},
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	ctrl.Initialize()
	if err := ctrl.InitializeInteraction(canvas.NopOverlay{}); err != nil {
		log.Fatalf("Failed to initialize canvas: %v", err)
	}
	if err := renderer.Render(ctrl, layout); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	exporter, err := ctrl.Export(*format)
	if err != nil {
		log.Fatalf("Failed to create exporter: %v", err)
	}

	path := *output
	if path == "" {
		path = "chart." + exporter.Format()
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := exporter.Export(f); err != nil {
		log.Fatalf("Failed to export chart: %v", err)
	}

	log.Printf("✓ Chart written to %s (%d cards, %s)", path, len(layout.Nodes), exporter.Format())
}

func loadIndividuals(path string) (map[string]*domain.Individual, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var individuals []*domain.Individual
	if err := json.Unmarshal(data, &individuals); err != nil {
		var doc struct {
			Individuals []*domain.Individual `json:"individuals"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		individuals = doc.Individuals
	}

	byID := make(map[string]*domain.Individual, len(individuals))
	for _, ind := range individuals {
		if ind != nil && ind.Identifier != "" {
			byID[ind.Identifier] = ind
		}
	}
	return byID, nil
}

// collectAncestors is the file-backed counterpart of the database walk:
// same ahnentafel numbering, parents resolved against the loaded map.
func collectAncestors(byID map[string]*domain.Individual, subject string, generations int) []*domain.AncestorEntry {
	if generations < 1 {
		generations = 1
	}

	type slot struct {
		number     int
		identifier string
	}

	entries := []*domain.AncestorEntry{}
	queue := []slot{{number: 1, identifier: subject}}
	limit := 1 << generations

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		ind := byID[current.identifier]
		if ind == nil {
			continue
		}

		entries = append(entries, &domain.AncestorEntry{Person: ind, Ahnentafel: current.number})

		fatherNumber := current.number * 2
		if fatherNumber < limit {
			queue = append(queue,
				slot{number: fatherNumber, identifier: ind.FatherIdentifier},
				slot{number: fatherNumber + 1, identifier: ind.MotherIdentifier},
			)
		}
	}
	return entries
}
