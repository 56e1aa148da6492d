package service

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kapu/pedigree-chart-go/internal/constants"
	"github.com/kapu/pedigree-chart-go/internal/domain"
	"github.com/kapu/pedigree-chart-go/internal/util"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/bidi"
)

// NameDecomposer extracts structured name components from rendered name
// markup with structural tree queries instead of string heuristics. It
// holds no mutable state and is safe for concurrent use.
//
// Rules run in a fixed order and later rules never reclaim text taken by
// an earlier one: preferred name, then surname tokens, then given-name
// tokens, then the independently parsed alternate name.
type NameDecomposer struct {
	logger *zap.Logger
}

func NewNameDecomposer(logger *zap.Logger) *NameDecomposer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NameDecomposer{logger: logger}
}

// Decompose never returns an error: malformed or absent markup degrades
// field-by-field to empty values. A missing name part is a valid outcome,
// not a failure.
func (nd *NameDecomposer) Decompose(fullNameMarkup, fullNameFlat, alternateNameMarkup string) domain.NameParts {
	parts := domain.NameParts{
		FirstNames:       []string{},
		LastNames:        []string{},
		AlternativeNames: []string{},
	}

	parts.DisplayName = util.CollapseWhitespace(util.RemoveAll(fullNameFlat,
		constants.Markup.NoFirstName, constants.Markup.NoLastName))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fullNameMarkup))
	if err != nil {
		nd.logger.Debug("Name markup parse failed", zap.Error(err))
	} else {
		parts.PreferredName = extractPreferredName(doc)
		parts.FirstNames, parts.LastNames = extractNameTokens(doc)
	}

	parts.AlternativeNames = nd.extractAlternativeNames(alternateNameMarkup)
	parts.IsAlternativeRtl = isRightToLeft(strings.Join(parts.AlternativeNames, " "))

	return parts
}

// extractPreferredName takes the first non-empty text node inside the
// starred element, "" when no marker exists.
func extractPreferredName(doc *goquery.Document) string {
	var preferred string
	doc.Find(constants.Markup.StarredSelector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		for _, n := range sel.Nodes {
			if text := firstTextNode(n); text != "" {
				preferred = text
				return false
			}
		}
		return true
	})
	return preferred
}

// extractNameTokens walks the parsed fragment once in document order.
// Text inside a surname span, or anywhere after one, belongs to the
// surname stream: the marked surname and its unmarked continuation (a
// suffix like "Jr.") are concatenated before splitting so compound
// surnames come out as separate tokens. Text before the first surname
// span forms the given-name stream. Nickname text never enters either
// stream, and without a surname span both streams stay empty.
func extractNameTokens(doc *goquery.Document) (firstNames, lastNames []string) {
	surnameNodes := make(map[*html.Node]struct{})
	for _, n := range doc.Find(constants.Markup.SurnameSelector).Nodes {
		surnameNodes[n] = struct{}{}
	}

	var given, surname strings.Builder
	surnameSeen := false

	var walk func(n *html.Node, inSurname, inNickname bool)
	walk = func(n *html.Node, inSurname, inNickname bool) {
		if n.Type == html.ElementNode {
			if _, ok := surnameNodes[n]; ok {
				inSurname = true
				surnameSeen = true
			}
			if hasClassToken(n, constants.Markup.NicknameClass) {
				inNickname = true
			}
		}

		if n.Type == html.TextNode && !inNickname {
			switch {
			case inSurname || surnameSeen:
				surname.WriteString(n.Data)
			case strings.TrimSpace(n.Data) != "":
				given.WriteString(n.Data)
				given.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inSurname, inNickname)
		}
	}
	for _, root := range doc.Nodes {
		walk(root, false, false)
	}

	if !surnameSeen {
		return []string{}, []string{}
	}
	return util.SplitTokens(given.String()), util.SplitTokens(surname.String())
}

// extractAlternativeNames parses the alternate fragment independently of
// the full name. The name proper is the element whose class contains
// "NAME"; without one the whole fragment's text is used.
func (nd *NameDecomposer) extractAlternativeNames(markup string) []string {
	if strings.TrimSpace(markup) == "" {
		return []string{}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		nd.logger.Debug("Alternate name markup parse failed", zap.Error(err))
		return []string{}
	}

	text := doc.Text()
	if sel := doc.Find(constants.Markup.AlternateSelector); sel.Length() > 0 {
		text = sel.First().Text()
	}
	return util.SplitTokens(text)
}

// isRightToLeft classifies by the first strong-directionality character,
// not by locale: the alternate name's script may run against the source
// individual's primary direction.
func isRightToLeft(s string) bool {
	for len(s) > 0 {
		props, size := bidi.LookupString(s)
		switch props.Class() {
		case bidi.L:
			return false
		case bidi.R, bidi.AL:
			return true
		}
		if size <= 0 {
			return false
		}
		s = s[size:]
	}
	return false
}

func firstTextNode(n *html.Node) string {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			return text
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text := firstTextNode(c); text != "" {
			return text
		}
	}
	return ""
}

func hasClassToken(n *html.Node, token string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		if util.Contains(util.SplitTokens(attr.Val), token) {
			return true
		}
	}
	return false
}
