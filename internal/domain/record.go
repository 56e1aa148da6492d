package domain

// NameParts is the result of decomposing one rendered name fragment.
// Collections are empty, never nil.
type NameParts struct {
	FirstNames       []string `json:"first_names"`
	LastNames        []string `json:"last_names"`
	PreferredName    string   `json:"preferred_name"`
	AlternativeNames []string `json:"alternative_names"`
	IsAlternativeRtl bool     `json:"is_alternative_rtl"`
	DisplayName      string   `json:"display_name"`
}

// ColorPair holds the downstream coloring sequences. This system only ever
// emits the empty placeholder; population happens outside it.
type ColorPair struct {
	First  []string `json:"first"`
	Second []string `json:"second"`
}

func NewColorPair() ColorPair {
	return ColorPair{First: []string{}, Second: []string{}}
}

// DisplayRecord is the finalized, render-ready description of one person
// node in the chart. Constructed once per source record and immutable
// afterwards; it is consumed by layout and rendering and then discarded.
type DisplayRecord struct {
	ID               int       `json:"id"`
	Identifier       string    `json:"identifier"`
	ViewURL          string    `json:"view_url,omitempty"`
	EditURL          string    `json:"edit_url,omitempty"`
	Generation       int       `json:"generation"`
	DisplayName      string    `json:"display_name"`
	FirstNames       []string  `json:"first_names"`
	LastNames        []string  `json:"last_names"`
	PreferredName    string    `json:"preferred_name"`
	AlternativeNames []string  `json:"alternative_names"`
	IsAlternativeRtl bool      `json:"is_alternative_rtl"`
	ThumbnailURL     string    `json:"thumbnail_url"`
	Sex              Sex       `json:"sex"`
	BirthLabel       string    `json:"birth_label"`
	DeathLabel       string    `json:"death_label"`
	TimespanLabel    string    `json:"timespan_label"`
	ColorPrimary     string    `json:"color_primary"`
	ColorPair        ColorPair `json:"color_pair"`
}

func (r *DisplayRecord) HasAlternateName() bool {
	if r == nil {
		return false
	}
	return len(r.AlternativeNames) > 0
}

func (r *DisplayRecord) HasThumbnail() bool {
	if r == nil {
		return false
	}
	return r.ThumbnailURL != ""
}
