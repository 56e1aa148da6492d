package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kapu/pedigree-chart-go/internal/constants"
	"github.com/kapu/pedigree-chart-go/internal/domain"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

type BuilderConfig struct {
	ViewURLTemplate string
	EditURLTemplate string
	Preferences     domain.TreePreferences
	Concurrency     int
}

// RecordBuilder turns raw individuals into render-ready display records.
// Record IDs stay 0; the caller owns id assignment.
type RecordBuilder struct {
	decomposer  *NameDecomposer
	cfg         BuilderConfig
	concurrency int
	logger      *zap.Logger
}

func NewRecordBuilder(decomposer *NameDecomposer, cfg BuilderConfig, logger *zap.Logger) *RecordBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = constants.BuilderConfig.Concurrency
	}

	logger.Info("Record builder initialized",
		zap.Int("concurrency", concurrency),
		zap.Bool("highlight_images", cfg.Preferences.ShowHighlightImages),
	)

	return &RecordBuilder{
		decomposer:  decomposer,
		cfg:         cfg,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (rb *RecordBuilder) Build(ind *domain.Individual, generation int, colorPrimary string) *domain.DisplayRecord {
	if ind == nil {
		return nil
	}

	parts := rb.decomposer.Decompose(ind.NameMarkup, ind.NameFlat, ind.AlternateNameMarkup)

	sex := ind.Sex
	if !sex.IsValid() {
		sex = domain.SexUnknown
	}

	birthLabel := ""
	if ind.Birth != nil {
		birthLabel = PlainLabel(ind.Birth.Text)
	}
	deathLabel := ""
	if ind.Death != nil {
		deathLabel = PlainLabel(ind.Death.Text)
	}

	return &domain.DisplayRecord{
		ID:               0,
		Identifier:       ind.Identifier,
		ViewURL:          expandURLTemplate(rb.cfg.ViewURLTemplate, ind.Identifier),
		EditURL:          expandURLTemplate(rb.cfg.EditURLTemplate, ind.Identifier),
		Generation:       generation,
		DisplayName:      parts.DisplayName,
		FirstNames:       parts.FirstNames,
		LastNames:        parts.LastNames,
		PreferredName:    parts.PreferredName,
		AlternativeNames: parts.AlternativeNames,
		IsAlternativeRtl: parts.IsAlternativeRtl,
		ThumbnailURL:     ResolveThumbnail(ind, rb.cfg.Preferences),
		Sex:              sex,
		BirthLabel:       birthLabel,
		DeathLabel:       deathLabel,
		TimespanLabel:    TimespanLabel(ind.Birth, ind.Death, ind.Deceased),
		ColorPrimary:     colorPrimary,
		ColorPair:        domain.NewColorPair(),
	}
}

// BuildAll decomposes an ancestor set on a bounded worker pool. The
// decomposer is stateless, so entries are processed in parallel; result
// order follows the input. Entries without a person are skipped.
func (rb *RecordBuilder) BuildAll(ctx context.Context, entries []*domain.AncestorEntry, colorFor func(generation int) string) []*domain.DisplayRecord {
	p := pool.New().WithMaxGoroutines(rb.concurrency)

	results := make([]*domain.DisplayRecord, len(entries))
	resultsMu := sync.Mutex{}

	for idx, entry := range entries {
		idx, entry := idx, entry
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			if entry == nil || entry.Person == nil {
				return
			}

			color := ""
			if colorFor != nil {
				color = colorFor(entry.Generation())
			}

			record := rb.Build(entry.Person, entry.Generation(), color)
			resultsMu.Lock()
			results[idx] = record
			resultsMu.Unlock()
		})
	}

	p.Wait()

	records := make([]*domain.DisplayRecord, 0, len(entries))
	for _, r := range results {
		if r != nil {
			records = append(records, r)
		}
	}

	rb.logger.Debug("Ancestor set built",
		zap.Int("entries", len(entries)),
		zap.Int("records", len(records)),
	)
	return records
}

func expandURLTemplate(template, identifier string) string {
	if template == "" || identifier == "" {
		return ""
	}
	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, identifier)
	}
	return template + identifier
}
