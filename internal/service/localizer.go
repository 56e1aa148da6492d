package service

import (
	"github.com/kapu/pedigree-chart-go/internal/canvas"
	"go.uber.org/zap"
)

const defaultLanguage = "en"

var translations = map[string]map[string]string{
	"en": {
		"hint.zoom":  "Use ctrl + scroll to zoom the view",
		"hint.move":  "Use two fingers to move the view",
		"label.view": "View",
		"label.edit": "Edit",
	},
	"de": {
		"hint.zoom":  "Strg + Scrollen zoomt die Ansicht",
		"hint.move":  "Mit zwei Fingern verschieben",
		"label.view": "Anzeigen",
		"label.edit": "Bearbeiten",
	},
}

// Localizer resolves UI labels for a language, falling back to English
// and finally to the key itself. Chart-facing date literals stay in
// constants; this only covers interaction and navigation texts.
type Localizer struct {
	lang   string
	logger *zap.Logger
}

func NewLocalizer(lang string, logger *zap.Logger) *Localizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, ok := translations[lang]; !ok {
		if lang != "" {
			logger.Warn("Unknown language, falling back to English", zap.String("lang", lang))
		}
		lang = defaultLanguage
	}
	return &Localizer{lang: lang, logger: logger}
}

func (l *Localizer) Language() string {
	return l.lang
}

func (l *Localizer) Translate(key string) string {
	if value, ok := translations[l.lang][key]; ok {
		return value
	}
	if value, ok := translations[defaultLanguage][key]; ok {
		return value
	}
	return key
}

// HintLabels bundles the overlay texts for canvas configuration.
func (l *Localizer) HintLabels() canvas.HintLabels {
	return canvas.HintLabels{
		ZoomHint: l.Translate("hint.zoom"),
		MoveHint: l.Translate("hint.move"),
	}
}
