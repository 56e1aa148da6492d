package service

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kapu/pedigree-chart-go/internal/constants"
	"github.com/kapu/pedigree-chart-go/internal/domain"
	"github.com/kapu/pedigree-chart-go/internal/util"
)

// TimespanLabel derives the card lifespan text from date resolvability:
// both years give "1900-1950", a lone birth "Born: 1900", a lone death
// "Died: 1950", a dateless but known-deceased person "Deceased", and a
// living person without dates an empty string.
func TimespanLabel(birth, death *domain.DateInfo, deceased bool) string {
	birthYear := birth.MinYear()
	deathYear := death.MinYear()

	switch {
	case birthYear > 0 && deathYear > 0:
		return fmt.Sprintf(constants.Timespan.RangeFormat, birthYear, deathYear)
	case birthYear > 0:
		return fmt.Sprintf(constants.Timespan.BornFormat, birthYear)
	case deathYear > 0:
		return fmt.Sprintf(constants.Timespan.DiedFormat, deathYear)
	case deceased:
		return constants.Timespan.Deceased
	default:
		return ""
	}
}

// ResolveThumbnail applies the image policy in order: a visible record
// with highlight images enabled gets its highlighted media sized to the
// thumbnail box, or a sex-specific silhouette when no media exists.
// Everything else gets the unknown-sex silhouette regardless of actual
// sex, so sex is only revealed once the image gating already passed.
func ResolveThumbnail(ind *domain.Individual, prefs domain.TreePreferences) string {
	if ind == nil {
		return silhouette(domain.SexUnknown)
	}

	if ind.Visible && prefs.ShowHighlightImages {
		if ind.HighlightMedia != nil && ind.HighlightMedia.URL != "" {
			return ind.HighlightMedia.ImageURL(
				constants.Thumbnail.BoxWidth,
				constants.Thumbnail.BoxHeight,
				constants.Thumbnail.Fit,
			)
		}
		return silhouette(ind.Sex)
	}

	return silhouette(domain.SexUnknown)
}

func silhouette(sex domain.Sex) string {
	if !sex.IsValid() {
		sex = domain.SexUnknown
	}
	return fmt.Sprintf(constants.Thumbnail.SilhouettePattern, sex)
}

// PlainLabel strips markup from a label fragment, leaving collapsed plain
// text. Unparseable input falls back to the raw string trimmed.
func PlainLabel(markup string) string {
	if markup == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return strings.TrimSpace(markup)
	}
	return util.CollapseWhitespace(doc.Text())
}
