package creditreport

import (
	"log/slog"
	"strings"

	"creditpull-backend/lib/document"
	"creditpull-backend/lib/textutil"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/creditreport")

// below this similarity a heading is considered a different section,
// not a renamed one
const fuzzyHeadingThreshold = 0.88

// findSection locates a report section by heading text, tolerating
// cosmetic renames via JaroWinkler, and only then falls back to the
// configured ordinal. The ordinal path is a degraded-confidence match
// against document order and is logged as such.
func findSection(doc document.Document, sel Selectors, loc Locator) document.Element {
	sections := doc.Select(sel.Section)
	if len(sections) == 0 {
		return nil
	}

	if loc.HeadingPattern != "" {
		want := textutil.NormalizeName(loc.HeadingPattern)

		for _, s := range sections {
			h := s.First(sel.SectionHeading)
			if h == nil {
				continue
			}
			if strings.Contains(textutil.NormalizeName(h.Text()), want) {
				return s
			}
		}

		var best document.Element
		var bestScore float64
		for _, s := range sections {
			h := s.First(sel.SectionHeading)
			if h == nil {
				continue
			}
			score := matchr.JaroWinkler(textutil.NormalizeName(h.Text()), want, false)
			if score > bestScore {
				bestScore = score
				best = s
			}
		}
		if best != nil && bestScore >= fuzzyHeadingThreshold {
			slog.Debug(
				"section heading matched fuzzily",
				"pattern", loc.HeadingPattern,
				"score", bestScore,
			)
			return best
		}

		slog.Warn(
			"no section heading matched, falling back to ordinal position",
			"pattern", loc.HeadingPattern,
			"ordinal", loc.FallbackOrdinal,
		)
	}

	if loc.FallbackOrdinal >= 0 && loc.FallbackOrdinal < len(sections) {
		return sections[loc.FallbackOrdinal]
	}
	return nil
}

// findSectionExact is the strict variant for sections the site never
// renames: normalized heading equality, no fuzzy pass, no ordinal
// fallback.
func findSectionExact(doc document.Document, sel Selectors, loc Locator) document.Element {
	want := textutil.NormalizeName(loc.HeadingPattern)
	for _, s := range doc.Select(sel.Section) {
		h := s.First(sel.SectionHeading)
		if h == nil {
			continue
		}
		if textutil.NormalizeName(h.Text()) == want {
			return s
		}
	}
	return nil
}

func rawText(el document.Element) *string {
	if el == nil {
		return nil
	}
	t := strings.TrimSpace(el.Text())
	if t == "" {
		return nil
	}
	return &t
}
