package creditreport

import (
	"encoding/json"
	"slices"
	"time"

	"creditpull-backend/lib/textutil"
	"creditpull-backend/lib/timezone"
)

// Account is one credit account in the final report. The three bureau
// maps always carry identical field-name sets, nil-valued where data is
// absent.
type Account struct {
	AccountName    string                    `json:"account_name"`
	Transunion     map[string]any            `json:"transunion"`
	Experian       map[string]any            `json:"experian"`
	Equifax        map[string]any            `json:"equifax"`
	PaymentHistory map[string][]PaymentMonth `json:"payment_history"`
	DaysLate       map[string]DaysLate       `json:"days_late"`
}

func (a Account) Bureau(name string) map[string]any {
	switch name {
	case BureauTransunion:
		return a.Transunion
	case BureauExperian:
		return a.Experian
	case BureauEquifax:
		return a.Equifax
	}
	return nil
}

type Inquiries struct {
	Count   map[string]any `json:"count"`
	Details []InquiryRow   `json:"details"`
}

type Contact map[string]*string

// Report is the terminal aggregate handed to the persistence boundary.
// Every top-level key is always present; a section that was not
// requested or failed extraction serializes as an explicit null so the
// schema is stable regardless of what was asked for.
type Report struct {
	CreditScores        map[string]map[string]any `json:"credit_scores_3b"`
	PersonalInformation map[string]map[string]any `json:"personal_information"`
	Summary             map[string]map[string]any `json:"summary"`
	AccountHistory      []Account                 `json:"account_history"`
	PublicRecords       map[string]map[string]any `json:"public_records"`
	Inquiries           *Inquiries                `json:"inquiries"`
	CreditorContacts    []Contact                 `json:"creditor_contacts"`
	ScrapedAt           string                    `json:"scraped_at"`
	AccountPagination   *Pagination               `json:"account_history_pagination,omitempty"`
}

// BuildReport maps raw extraction output through the field transforms
// into the final report shape. Grid fields default to numeric
// extraction with per-config text and date overrides; account fields
// get text cleanup plus date normalization on the date-like fields.
// Payment history and days-late structures pass through unchanged,
// they were never raw text.
func BuildReport(raw RawSections, cfg Config) Report {
	r := Report{
		ScrapedAt:         timezone.Now().Format(time.RFC3339),
		AccountPagination: raw.AccountPagination,
	}

	r.CreditScores = buildScores(raw.CreditScores, cfg.Sections[SectionCreditScores])
	r.PersonalInformation = buildGrid(raw.PersonalInformation, cfg.Sections[SectionPersonalInformation])
	r.Summary = buildGrid(raw.Summary, cfg.Sections[SectionSummary])
	r.PublicRecords = buildGrid(raw.PublicRecords, cfg.Sections[SectionPublicRecords])

	if raw.AccountHistory != nil {
		accountCfg := cfg.Sections[SectionAccountHistory]
		accounts := make([]Account, len(raw.AccountHistory))
		for i, rawAcct := range raw.AccountHistory {
			accounts[i] = buildAccount(rawAcct, accountCfg)
		}
		r.AccountHistory = accounts
	}

	if raw.Inquiries != nil {
		counts := map[string]any{}
		for _, bureau := range Bureaus {
			counts[bureau] = numericValue(raw.Inquiries.Count[bureau])
		}
		r.Inquiries = &Inquiries{
			Count:   counts,
			Details: raw.Inquiries.Details,
		}
	}

	if raw.CreditorContacts != nil {
		contacts := make([]Contact, len(raw.CreditorContacts))
		for i, c := range raw.CreditorContacts {
			contacts[i] = Contact(c.Fields)
		}
		r.CreditorContacts = contacts
	}

	return r
}

// Parse3BScores converts a bureau-to-raw-score triple into numbers,
// nil where the score cell was absent or non-numeric.
func Parse3BScores(raw BureauValues) map[string]*float64 {
	out := map[string]*float64{}
	for _, bureau := range Bureaus {
		v := raw[bureau]
		if v == nil {
			out[bureau] = nil
			continue
		}
		out[bureau] = textutil.ExtractNumber(*v)
	}
	return out
}

// ValidateReport checks that the foundational sections made it through
// extraction, returning the names of any that are missing. Advisory:
// a partially valid report is still usable.
func ValidateReport(r Report) []string {
	var missing []string
	if r.CreditScores == nil {
		missing = append(missing, SectionCreditScores)
	}
	if r.PersonalInformation == nil {
		missing = append(missing, SectionPersonalInformation)
	}
	if r.Summary == nil {
		missing = append(missing, SectionSummary)
	}
	return missing
}

// WindowAccounts applies a pagination window over a built report's
// account list, for reports that were stored unpaginated. Mirrors the
// extraction-time window: a slice over the full list, never a partial
// read.
func WindowAccounts(r Report, page Page) Report {
	total := len(r.AccountHistory)

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

	r.AccountHistory = r.AccountHistory[offset:end]
	r.AccountPagination = &Pagination{
		Total:   total,
		HasMore: end < total,
		Limit:   page.Limit,
		Offset:  page.Offset,
	}
	return r
}

// EstimateSize is the serialized byte size of the report, for callers
// deciding whether to paginate account history.
func EstimateSize(r Report) int {
	raw, err := json.Marshal(r)
	if err != nil {
		return 0
	}
	return len(raw)
}

func buildGrid(raw RawGrid, cfg SectionConfig) map[string]map[string]any {
	if raw == nil {
		return nil
	}
	out := map[string]map[string]any{}
	for bureau, fields := range raw {
		m := map[string]any{}
		for name, value := range fields {
			m[name] = transformGridField(value, cfg, name)
		}
		out[bureau] = m
	}
	return out
}

// buildScores is buildGrid plus a derived score_change field parsed out
// of the commentary blurb.
func buildScores(raw RawGrid, cfg SectionConfig) map[string]map[string]any {
	out := buildGrid(raw, cfg)
	if out == nil {
		return nil
	}
	for bureau, fields := range out {
		fields["score_change"] = nil
		commentary, ok := raw[bureau]["score_commentary"]
		if !ok || commentary == nil {
			continue
		}
		if delta := textutil.ParseScoreProgress(*commentary); delta != nil {
			out[bureau]["score_change"] = float64(*delta)
		}
	}
	return out
}

func buildAccount(raw RawAccount, cfg SectionConfig) Account {
	acct := Account{
		AccountName:    raw.Name,
		PaymentHistory: raw.PaymentHistory,
		DaysLate:       raw.DaysLate,
	}
	bureauMaps := map[string]map[string]any{}
	for _, bureau := range Bureaus {
		m := map[string]any{}
		for _, name := range cfg.Fields {
			var value *string
			if raw.Fields != nil && raw.Fields[bureau] != nil {
				value = raw.Fields[bureau][name]
			}
			m[name] = transformAccountField(value, cfg, name)
		}
		bureauMaps[bureau] = m
	}
	acct.Transunion = bureauMaps[BureauTransunion]
	acct.Experian = bureauMaps[BureauExperian]
	acct.Equifax = bureauMaps[BureauEquifax]
	return acct
}

func transformGridField(value *string, cfg SectionConfig, name string) any {
	if value == nil {
		return nil
	}
	if slices.Contains(cfg.DateFields, name) {
		if d := textutil.ParseDate(*value); d != nil {
			return *d
		}
		return nil
	}
	if slices.Contains(cfg.TextFields, name) {
		return textValue(value)
	}
	return numericValue(value)
}

func transformAccountField(value *string, cfg SectionConfig, name string) any {
	if value == nil {
		return nil
	}
	if slices.Contains(cfg.DateFields, name) {
		if d := textutil.ParseDate(*value); d != nil {
			return *d
		}
		return nil
	}
	return textValue(value)
}

func textValue(value *string) any {
	if value == nil {
		return nil
	}
	if t := textutil.CleanText(*value); t != nil {
		return *t
	}
	return nil
}

func numericValue(value *string) any {
	if value == nil {
		return nil
	}
	if n := textutil.ExtractNumber(*value); n != nil {
		return *n
	}
	return nil
}
