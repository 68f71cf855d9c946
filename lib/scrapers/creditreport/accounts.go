package creditreport

import (
	"log/slog"
	"strings"

	"creditpull-backend/lib/document"
)

// ExtractAccounts reads every account container in the Account History
// section. The enumeration is scoped strictly to that section's
// subtree: lookalike containers exist elsewhere on the page.
//
// Accounts are processed independently. A malformed account degrades
// its own optional sub-structures to nil and is still emitted; its
// neighbors are untouched.
func ExtractAccounts(doc document.Document, sel Selectors, cfg SectionConfig) []RawAccount {
	section := findSection(doc, sel, cfg.Locator)
	if section == nil {
		return nil
	}

	containers := section.Select(sel.AccountContainer)
	out := make([]RawAccount, 0, len(containers))
	for i, container := range containers {
		out = append(out, extractAccount(container, sel, cfg, i))
	}
	return out
}

func extractAccount(container document.Element, sel Selectors, cfg SectionConfig, idx int) (acct RawAccount) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn(
				"account extraction degraded",
				"account_index", idx,
				"panic", r,
			)
			acct.PaymentHistory = nil
			acct.DaysLate = nil
			acct.Fields = normalizeAccountFields(acct.Fields, cfg.Fields)
		}
	}()

	if name := container.First(sel.AccountName); name != nil {
		acct.Name = name.Text()
	}

	// same 4-column-group pattern as the top-level grids, read within
	// the account container
	grid := extractGridIn(container, sel, SectionConfig{Fields: cfg.Fields})
	acct.Fields = normalizeAccountFields(map[string]RawFields(grid), cfg.Fields)

	acct.PaymentHistory = extractPaymentHistory(container, sel)
	acct.DaysLate = extractDaysLate(container, sel)
	return acct
}

// normalizeAccountFields guarantees the schema invariant: every bureau
// map carries every configured field name, nil-valued where data is
// missing.
func normalizeAccountFields(fields map[string]RawFields, names []string) map[string]RawFields {
	out := map[string]RawFields{}
	for _, bureau := range Bureaus {
		m := RawFields{}
		for _, name := range names {
			if fields != nil && fields[bureau] != nil {
				m[name] = fields[bureau][name]
			} else {
				m[name] = nil
			}
		}
		out[bureau] = m
	}
	return out
}

const statusClassPrefix = "status-"

func statusClassToken(classes []string) string {
	for _, c := range classes {
		if strings.HasPrefix(c, statusClassPrefix) {
			return strings.TrimPrefix(c, statusClassPrefix)
		}
	}
	return ""
}

// extractPaymentHistory reads the 24-month calendar, one block per
// bureau. Nil when fewer than three bureau blocks rendered: a partial
// calendar is not attributable to bureaus reliably.
func extractPaymentHistory(container document.Element, sel Selectors) map[string][]PaymentMonth {
	ph := container.First(sel.PaymentHistory)
	if ph == nil {
		return nil
	}
	blocks := ph.Select(sel.PaymentBureauBlock)
	if len(blocks) < len(Bureaus) {
		return nil
	}

	out := map[string][]PaymentMonth{}
	for i, bureau := range Bureaus {
		months := blocks[i].Select(sel.PaymentMonth)
		entries := make([]PaymentMonth, 0, len(months))
		for _, m := range months {
			entry := PaymentMonth{
				StatusClass: statusClassToken(m.ClassList()),
			}
			if label := m.First(sel.PaymentMonthLabel); label != nil {
				entry.Month = label.Text()
			}
			if status := m.First(sel.PaymentStatusLabel); status != nil {
				entry.Status = status.Text()
			}
			entries = append(entries, entry)
		}
		out[bureau] = entries
	}
	return out
}

const daysLateHeadingText = "days late"

// extractDaysLate reads the 30/60/90 histogram. The sub-table is found
// by its heading text since the account block renders several small
// tables with the same classes.
func extractDaysLate(container document.Element, sel Selectors) map[string]DaysLate {
	var table document.Element
	for _, t := range container.Select(sel.DaysLateTable) {
		h := t.First(sel.DaysLateHeading)
		if h != nil && strings.Contains(strings.ToLower(h.Text()), daysLateHeadingText) {
			table = t
			break
		}
	}
	if table == nil {
		return nil
	}

	columns := table.Select(sel.DaysLateColumn)
	if len(columns) < len(Bureaus) {
		return nil
	}

	out := map[string]DaysLate{}
	for i, bureau := range Bureaus {
		counts := columns[i].Select(sel.DaysLateCount)
		// missing buckets render as zero on this layout, not as
		// unknown; see DaysLate
		dl := DaysLate{Late30: "0", Late60: "0", Late90: "0"}
		if len(counts) > 0 {
			if v := rawText(counts[0]); v != nil {
				dl.Late30 = *v
			}
		}
		if len(counts) > 1 {
			if v := rawText(counts[1]); v != nil {
				dl.Late60 = *v
			}
		}
		if len(counts) > 2 {
			if v := rawText(counts[2]); v != nil {
				dl.Late90 = *v
			}
		}
		out[bureau] = dl
	}
	return out
}
