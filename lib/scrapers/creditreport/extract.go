package creditreport

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"creditpull-backend/lib/document"

	"go.opentelemetry.io/otel/codes"
)

// DefaultRevealSettle is how long the contact extractor waits after
// activating reveal toggles before re-reading the document. Tunable via
// Options; the value is a heuristic, see ExtractContacts.
const DefaultRevealSettle = 1500 * time.Millisecond

var ErrNoDocument = errors.New("no document to extract from")

type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Options configures one extraction run.
type Options struct {
	// section names to extract; empty or containing "all" means every
	// known section
	Sections []string `json:"sections"`
	// window over the account list, applied after full extraction
	AccountPage *Page `json:"account_page"`
	// overrides DefaultRevealSettle when > 0
	RevealSettle time.Duration `json:"-"`
}

func (o Options) wants(name string) bool {
	if len(o.Sections) == 0 {
		return true
	}
	for _, s := range o.Sections {
		if s == "all" || s == name {
			return true
		}
	}
	return false
}

func (o Options) revealSettle() time.Duration {
	if o.RevealSettle > 0 {
		return o.RevealSettle
	}
	return DefaultRevealSettle
}

// ExtractAll runs every requested section extractor against the
// document. Sections are extracted one at a time: they all share the
// one underlying page, and the contact reveal step mutates it.
//
// Section failures are isolated. An extractor returning nil or
// panicking leaves that one section nil in the result; every other
// section still runs. The only error returned is a nil document, which
// means the collaborator handing us the page is broken.
func ExtractAll(ctx context.Context, doc document.Document, cfg Config, opts Options) (RawSections, error) {
	ctx, span := tracer.Start(ctx, "ExtractAll")
	defer span.End()

	if doc == nil {
		span.SetStatus(codes.Error, ErrNoDocument.Error())
		return RawSections{}, ErrNoDocument
	}

	sel := cfg.Selectors
	out := RawSections{}

	if opts.wants(SectionCreditScores) {
		runSection(ctx, SectionCreditScores, func() {
			out.CreditScores = ExtractGridData(doc, sel, cfg.Sections[SectionCreditScores])
		})
	}
	if opts.wants(SectionPersonalInformation) {
		runSection(ctx, SectionPersonalInformation, func() {
			out.PersonalInformation = ExtractGridData(doc, sel, cfg.Sections[SectionPersonalInformation])
		})
	}
	if opts.wants(SectionSummary) {
		runSection(ctx, SectionSummary, func() {
			out.Summary = ExtractGridData(doc, sel, cfg.Sections[SectionSummary])

			// the account counters live in a narrower second grid;
			// merge them into the bureau maps field by field
			totals := ExtractGridData(doc, sel, cfg.Sections[sectionAccountTotals])
			if out.Summary == nil || totals == nil {
				return
			}
			for _, bureau := range Bureaus {
				for name, value := range totals[bureau] {
					out.Summary[bureau][name] = value
				}
			}
		})
	}
	if opts.wants(SectionAccountHistory) {
		runSection(ctx, SectionAccountHistory, func() {
			out.AccountHistory = ExtractAccounts(doc, sel, cfg.Sections[SectionAccountHistory])
		})
		if opts.AccountPage != nil && out.AccountHistory != nil {
			out.AccountHistory, out.AccountPagination = paginateAccounts(out.AccountHistory, *opts.AccountPage)
		}
	}
	if opts.wants(SectionPublicRecords) {
		runSection(ctx, SectionPublicRecords, func() {
			out.PublicRecords = ExtractGridData(doc, sel, cfg.Sections[SectionPublicRecords])
		})
	}
	if opts.wants(SectionInquiries) {
		runSection(ctx, SectionInquiries, func() {
			out.Inquiries = extractInquiries(doc, sel, cfg)
		})
	}
	if opts.wants(SectionCreditorContacts) {
		runSection(ctx, SectionCreditorContacts, func() {
			out.CreditorContacts = ExtractContacts(
				ctx, doc, sel,
				cfg.Sections[SectionCreditorContacts],
				opts.revealSettle(),
			)
		})
	}

	return out, nil
}

// runSection is the per-section fault boundary. Extractors already
// return nil on structural mismatches; this additionally catches
// anything that escapes them so one broken section cannot abort the
// run.
func runSection(ctx context.Context, name string, fn func()) {
	ctx, span := tracer.Start(ctx, "section:"+name)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			span.SetStatus(codes.Error, "section extraction panicked")
			slog.WarnContext(
				ctx,
				"section extraction failed, leaving section empty",
				"section", name,
				"panic", r,
			)
		}
	}()
	fn()
}

// extractInquiries builds the compound inquiry result: the aggregate
// count comes from a narrow read of the summary grid's inquiries cell,
// the details from the row list.
func extractInquiries(doc document.Document, sel Selectors, cfg Config) *RawInquiries {
	details := ExtractInquiryRows(doc, sel, cfg.Sections[SectionInquiries])

	count := BureauValues{}
	summary := ExtractGridData(doc, sel, cfg.Sections[SectionSummary])
	for _, bureau := range Bureaus {
		if summary != nil {
			count[bureau] = summary[bureau]["inquiries_2_years"]
		} else {
			count[bureau] = nil
		}
	}

	return &RawInquiries{
		Count:   count,
		Details: details,
	}
}

// paginateAccounts slices the fully materialized account list. The
// extraction cost is already paid; the window only bounds what crosses
// the wire.
func paginateAccounts(accounts []RawAccount, page Page) ([]RawAccount, *Pagination) {
	total := len(accounts)

	offset := page.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if page.Limit > 0 && offset+page.Limit < total {
		end = offset + page.Limit
	}

	return accounts[offset:end], &Pagination{
		Total:   total,
		HasMore: end < total,
		Limit:   page.Limit,
		Offset:  page.Offset,
	}
}
