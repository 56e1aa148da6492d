package constants

import "time"

var CacheTTL = struct {
	RenderedChart time.Duration
	DisplayRecord time.Duration
}{
	RenderedChart: 10 * time.Minute,
	DisplayRecord: 30 * time.Minute,
}

var CacheKey = struct {
	RenderPrefix string
	RecordPrefix string
}{
	RenderPrefix: "chart:render:",
	RecordPrefix: "chart:record:",
}

// Markup describes the name-fragment convention produced by the upstream
// genealogy renderer. The surname is wrapped in a SURN span, nicknames in a
// wt-nickname element, and the preferred given name in a starredname element.
// Alternate-name fragments wrap the name proper in an element whose class
// contains "NAME". Missing name parts appear as @P.N. / @N.N. placeholders.
var Markup = struct {
	SurnameSelector   string
	NicknameClass     string
	StarredSelector   string
	AlternateSelector string
	NoFirstName       string
	NoLastName        string
}{
	SurnameSelector:   "span.SURN",
	NicknameClass:     "wt-nickname",
	StarredSelector:   ".starredname",
	AlternateSelector: "[class*=NAME]",
	NoFirstName:       "@P.N.",
	NoLastName:        "@N.N.",
}

var Timespan = struct {
	RangeFormat string
	BornFormat  string
	DiedFormat  string
	Deceased    string
}{
	RangeFormat: "%d-%d",
	BornFormat:  "Born: %d",
	DiedFormat:  "Died: %d",
	Deceased:    "Deceased",
}

var Thumbnail = struct {
	BoxWidth          int
	BoxHeight         int
	Fit               string
	SilhouettePattern string
}{
	BoxWidth:          250,
	BoxHeight:         250,
	Fit:               "contain",
	SilhouettePattern: "assets/images/silhouette-%s.svg",
}

var Canvas = struct {
	OverlayShowDuration time.Duration
	OverlayHideDelay    time.Duration
	MinScale            float64
	MaxScale            float64
	WheelZoomStep       float64
}{
	OverlayShowDuration: 300 * time.Millisecond,
	OverlayHideDelay:    3 * time.Second,
	MinScale:            0.5,
	MaxScale:            5.0,
	WheelZoomStep:       1.15,
}

var Chart = struct {
	CardWidth     float64
	CardHeight    float64
	HorizontalGap float64
	VerticalGap   float64
	CardPadding   float64
	ImageSize     float64
}{
	CardWidth:     260,
	CardHeight:    80,
	HorizontalGap: 20,
	VerticalGap:   40,
	CardPadding:   10,
	ImageSize:     60,
}

var StringLimits = struct {
	CardNameLine int
	CardAltLine  int
	TooltipLine  int
}{
	CardNameLine: 28,
	CardAltLine:  24,
	TooltipLine:  60,
}

var BuilderConfig = struct {
	Concurrency int
}{
	Concurrency: 8,
}

var WebSocketConfig = struct {
	ReadBufferSize  int
	WriteBufferSize int
	WriteTimeout    time.Duration
}{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	WriteTimeout:    5 * time.Second,
}

var ProviderLimits = struct {
	MaxGenerations int
}{
	MaxGenerations: 10,
}
