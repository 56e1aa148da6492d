package domain

import (
	"fmt"
	"math/bits"
)

// MediaRef points at a media object in the hosting application.
type MediaRef struct {
	URL string `json:"url"`
}

// ImageURL returns the media image sized to a bounding box with the given
// fit mode, using the hosting application's resize query convention.
func (m *MediaRef) ImageURL(width, height int, fit string) string {
	if m == nil || m.URL == "" {
		return ""
	}
	return fmt.Sprintf("%s?w=%d&h=%d&fit=%s", m.URL, width, height, fit)
}

// TreePreferences is the slice of tree-level settings this system reads.
type TreePreferences struct {
	ShowHighlightImages bool `json:"show_highlight_images"`
}

// Individual is the raw record supplied by the genealogy data source.
// Name fields arrive as rendered markup; see constants.Markup for the
// convention.
type Individual struct {
	Identifier          string    `json:"identifier"`
	NameMarkup          string    `json:"name_markup"`
	NameFlat            string    `json:"name_flat"`
	AlternateNameMarkup string    `json:"alternate_name_markup,omitempty"`
	Sex                 Sex       `json:"sex"`
	Birth               *DateInfo `json:"birth,omitempty"`
	Death               *DateInfo `json:"death,omitempty"`
	Deceased            bool      `json:"deceased"`
	Visible             bool      `json:"visible"`
	HighlightMedia      *MediaRef `json:"highlight_media,omitempty"`
	FatherIdentifier    string    `json:"father_identifier,omitempty"`
	MotherIdentifier    string    `json:"mother_identifier,omitempty"`
}

func (i *Individual) HasParents() bool {
	if i == nil {
		return false
	}
	return i.FatherIdentifier != "" || i.MotherIdentifier != ""
}

// AncestorEntry places an individual in an ancestor set using Ahnentafel
// numbering: the subject is 1, a person's father is 2n and mother 2n+1.
type AncestorEntry struct {
	Person     *Individual `json:"person"`
	Ahnentafel int         `json:"ahnentafel"`
}

// Generation derives the generation from the Ahnentafel number: the
// subject is generation 0, parents 1, grandparents 2.
func (a *AncestorEntry) Generation() int {
	if a == nil || a.Ahnentafel < 1 {
		return 0
	}
	return bits.Len(uint(a.Ahnentafel)) - 1
}

// IndexInGeneration is the left-to-right slot within the generation row,
// 0-based: generation g holds indexes 0 .. 2^g-1.
func (a *AncestorEntry) IndexInGeneration() int {
	if a == nil || a.Ahnentafel < 1 {
		return 0
	}
	return a.Ahnentafel - (1 << a.Generation())
}
