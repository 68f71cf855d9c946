package creditreport

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"creditpull-backend/lib/document"
)

// ExtractContacts reads the creditor contact blocks. Contact details
// hide behind per-creditor toggles, so every toggle whose label carries
// a "show" token is activated first, then the settling delay is waited
// out before re-reading the document. The delay is a heuristic: toggle
// expansion is asynchronous and the page exposes no completion signal.
//
// A contact is only emitted when at least one of its fields is
// non-empty after trimming.
func ExtractContacts(ctx context.Context, doc document.Document, sel Selectors, cfg SectionConfig, settle time.Duration) []RawContact {
	ctx, span := tracer.Start(ctx, "ExtractContacts")
	defer span.End()

	revealed := 0
	for _, toggle := range doc.Select(sel.RevealToggle) {
		if !strings.Contains(strings.ToLower(toggle.Text()), "show") {
			continue
		}
		err := toggle.Activate(ctx)
		if err != nil {
			span.RecordError(err)
			slog.WarnContext(ctx, "failed to activate reveal toggle", "err", err)
			continue
		}
		revealed++
	}
	if revealed > 0 && settle > 0 {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(settle):
		}
	}

	section := findSection(doc, sel, cfg.Locator)
	if section == nil {
		return nil
	}

	var out []RawContact
	for _, container := range section.Select(sel.ContactContainer) {
		cells := container.Select(sel.ContactField)

		fields := map[string]*string{}
		nonEmpty := false
		for i, name := range cfg.Fields {
			if i < len(cells) {
				v := rawText(cells[i])
				fields[name] = v
				if v != nil {
					nonEmpty = true
				}
			} else {
				fields[name] = nil
			}
		}
		if !nonEmpty {
			continue
		}
		out = append(out, RawContact{Fields: fields})
	}
	return out
}
