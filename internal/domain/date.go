package domain

import "github.com/kapu/pedigree-chart-go/internal/util"

// DateInfo carries a genealogical date as recorded, which may be partial,
// qualified ("ABT 1900") or a range ("BET 1900 AND 1905").
type DateInfo struct {
	Text string `json:"text"`
}

// MinYear resolves the earliest year mentioned in the date, 0 if none.
func (d *DateInfo) MinYear() int {
	if d == nil {
		return 0
	}
	return util.MinYear(d.Text)
}

// Resolvable reports whether the date yields at least one year.
func (d *DateInfo) Resolvable() bool {
	return d.MinYear() > 0
}
