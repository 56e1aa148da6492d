package adapter

import (
	"strings"

	"github.com/kapu/pedigree-chart-go/internal/constants"
	"github.com/kapu/pedigree-chart-go/internal/domain"
	"github.com/kapu/pedigree-chart-go/internal/util"
)

// RecordFormatter renders display records as plain text lines for
// tooltips and API summaries.
type RecordFormatter struct{}

func NewRecordFormatter() *RecordFormatter {
	return &RecordFormatter{}
}

// NameLine is the card headline, identifier as fallback for records
// whose markup carried placeholders only.
func (f *RecordFormatter) NameLine(record *domain.DisplayRecord) string {
	if record == nil {
		return ""
	}
	name := record.DisplayName
	if name == "" {
		name = record.Identifier
	}
	return util.TruncateString(name, constants.StringLimits.CardNameLine)
}

func (f *RecordFormatter) LifespanLine(record *domain.DisplayRecord) string {
	if record == nil {
		return ""
	}
	return record.TimespanLabel
}

func (f *RecordFormatter) AltNameLine(record *domain.DisplayRecord) string {
	if record == nil || !record.HasAlternateName() {
		return ""
	}
	return util.TruncateString(strings.Join(record.AlternativeNames, " "), constants.StringLimits.CardAltLine)
}

// TooltipLines builds the hover text: name, alternate name, vital labels.
// Empty lines are dropped.
func (f *RecordFormatter) TooltipLines(record *domain.DisplayRecord) []string {
	if record == nil {
		return []string{}
	}

	candidates := []string{
		f.NameLine(record),
		f.AltNameLine(record),
		f.LifespanLine(record),
		record.BirthLabel,
		record.DeathLabel,
	}

	lines := make([]string, 0, len(candidates))
	for _, line := range candidates {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, util.TruncateString(line, constants.StringLimits.TooltipLine))
	}
	return lines
}

func (f *RecordFormatter) Tooltip(record *domain.DisplayRecord) string {
	return strings.Join(f.TooltipLines(record), "\n")
}
