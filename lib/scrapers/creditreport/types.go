package creditreport

// the three bureaus, in the order their columns render
const (
	BureauTransunion = "transunion"
	BureauExperian   = "experian"
	BureauEquifax    = "equifax"
)

var Bureaus = []string{BureauTransunion, BureauExperian, BureauEquifax}

// RawFields maps field name to raw scraped text, nil where the cell is
// absent. Placeholders like "--" survive this stage; the report builder
// collapses them.
type RawFields map[string]*string

// RawGrid is one grid section's output, keyed by bureau.
type RawGrid map[string]RawFields

// BureauValues is a single value per bureau, for narrow reads.
type BureauValues map[string]*string

// PaymentMonth is one cell of the 24-month payment calendar.
type PaymentMonth struct {
	Month       string `json:"month"`
	Status      string `json:"status"`
	StatusClass string `json:"status_class"`
}

// DaysLate is the 30/60/90 late-payment histogram for one bureau.
// Missing buckets render as "0" on this document shape; whether that
// truly means zero or merely unrendered is an ambiguity inherited from
// the site, kept as-is on purpose.
type DaysLate struct {
	Late30 string `json:"late_30"`
	Late60 string `json:"late_60"`
	Late90 string `json:"late_90"`
}

// RawAccount is one account container's output before transforms.
// Fields always carries the full configured field set for every bureau,
// nil-valued where data is absent, so the schema never collapses.
type RawAccount struct {
	Name           string
	Fields         map[string]RawFields
	PaymentHistory map[string][]PaymentMonth
	DaysLate       map[string]DaysLate
}

type InquiryRow struct {
	CreditorName string `json:"creditor_name"`
	InquiryDate  string `json:"inquiry_date"`
	CreditBureau string `json:"credit_bureau"`
}

// RawInquiries is the compound inquiry result: aggregate counts from
// the summary grid plus the detailed row list.
type RawInquiries struct {
	Count   BureauValues
	Details []InquiryRow
}

type RawContact struct {
	Fields map[string]*string
}

// Pagination describes the window applied to the account list. The
// window is a slice over the fully extracted list, not a partial read.
type Pagination struct {
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
}

// RawSections is everything one extraction run pulled out of the
// document. A nil section means it was not requested or its structural
// preconditions failed; both degrade the same way downstream.
type RawSections struct {
	CreditScores        RawGrid
	PersonalInformation RawGrid
	Summary             RawGrid
	AccountHistory      []RawAccount
	AccountPagination   *Pagination
	PublicRecords       RawGrid
	Inquiries           *RawInquiries
	CreditorContacts    []RawContact
}
