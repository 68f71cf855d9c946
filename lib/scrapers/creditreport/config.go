package creditreport

// Shape is the structural kind of a report section. Each shape has a
// dedicated extractor.
type Shape string

const (
	ShapeGrid            Shape = "grid"
	ShapeAccountList     Shape = "account-list"
	ShapeRowList         Shape = "row-list"
	ShapeInteractiveList Shape = "interactive-list"
)

// section names, also the keys accepted in Options.Sections
const (
	SectionCreditScores        = "credit_scores"
	SectionPersonalInformation = "personal_information"
	SectionSummary             = "summary"
	SectionAccountHistory      = "account_history"
	SectionPublicRecords       = "public_records"
	SectionInquiries           = "inquiries"
	SectionCreditorContacts    = "creditor_contacts"

	// narrow second read merged into the summary bureau maps
	sectionAccountTotals = "account_totals"
)

var SectionNames = []string{
	SectionCreditScores,
	SectionPersonalInformation,
	SectionSummary,
	SectionAccountHistory,
	SectionPublicRecords,
	SectionInquiries,
	SectionCreditorContacts,
}

// Locator describes how to find a section among the repeated section
// containers: heading match first, explicit ordinal fallback second.
// The fallback is never implicit; a config that wants ordinal-only
// location leaves HeadingPattern empty.
type Locator struct {
	HeadingPattern  string `json:"heading_pattern"`
	FallbackOrdinal int    `json:"fallback_ordinal"`
}

// SectionConfig declares how to locate and shape one report section.
// Loaded once and shared by every extraction run, never mutated.
type SectionConfig struct {
	Name        string  `json:"name"`
	Shape       Shape   `json:"shape"`
	Locator     Locator `json:"locator"`
	// which grid inside the section to read, for grid shapes
	GridOrdinal int      `json:"grid_ordinal"`
	Fields      []string `json:"fields"`
	// report-builder transform overrides; a field in neither list
	// defaults to numeric extraction (grid shapes) or text cleanup
	// (account lists)
	TextFields []string `json:"text_fields"`
	DateFields []string `json:"date_fields"`
}

// Selectors is the site's document shape. Pure configuration data: the
// extractors only know about the roles, not the strings.
type Selectors struct {
	Section        string `json:"section"`
	SectionHeading string `json:"section_heading"`
	Grid           string `json:"grid"`
	ColumnGroup    string `json:"column_group"`
	Cell           string `json:"cell"`

	AccountContainer string `json:"account_container"`
	AccountName      string `json:"account_name"`

	PaymentHistory     string `json:"payment_history"`
	PaymentBureauBlock string `json:"payment_bureau_block"`
	PaymentMonth       string `json:"payment_month"`
	PaymentMonthLabel  string `json:"payment_month_label"`
	PaymentStatusLabel string `json:"payment_status_label"`

	DaysLateTable   string `json:"days_late_table"`
	DaysLateHeading string `json:"days_late_heading"`
	DaysLateColumn  string `json:"days_late_column"`
	DaysLateCount   string `json:"days_late_count"`

	InquiryRow  string `json:"inquiry_row"`
	InquiryCell string `json:"inquiry_cell"`

	ContactContainer string `json:"contact_container"`
	ContactField     string `json:"contact_field"`
	RevealToggle     string `json:"reveal_toggle"`
}

type Config struct {
	Selectors Selectors                `json:"selectors"`
	Sections  map[string]SectionConfig `json:"sections"`
}

// the 23 per-bureau account fields, in the order the grid renders them
var accountFields = []string{
	"account_number",
	"account_type",
	"account_type_detail",
	"bureau_code",
	"account_status",
	"monthly_payment",
	"date_opened",
	"balance",
	"no_of_months",
	"high_credit",
	"credit_limit",
	"past_due",
	"payment_status",
	"date_reported",
	"comments",
	"date_of_last_activity",
	"date_of_last_payment",
	"term_length",
	"creditor_remarks",
	"payment_amount",
	"last_verified",
	"closed_date",
	"dispute_status",
}

var accountDateFields = []string{
	"date_opened",
	"date_reported",
	"date_of_last_activity",
	"date_of_last_payment",
	"last_verified",
	"closed_date",
}

// DefaultConfig describes the document shape of the report page as it
// renders today. Everything here is data; a site redesign is a config
// change, not a code change.
func DefaultConfig() Config {
	return Config{
		Selectors: Selectors{
			Section:        "div.rpt_content_wrapper",
			SectionHeading: "div.rpt_fullReport_header",
			Grid:           "div.rpt_content_table",
			ColumnGroup:    "div.rpt_content_column",
			Cell:           "div.rpt_content_cell",

			AccountContainer: "div.account_block",
			AccountName:      "div.account_name",

			PaymentHistory:     "div.payment_history",
			PaymentBureauBlock: "div.payment_history_bureau",
			PaymentMonth:       "div.payment_month",
			PaymentMonthLabel:  "span.month_label",
			PaymentStatusLabel: "span.status_label",

			DaysLateTable:   "div.days_late_table",
			DaysLateHeading: "div.days_late_header",
			DaysLateColumn:  "div.days_late_column",
			DaysLateCount:   "span.days_late_count",

			InquiryRow:  "tr",
			InquiryCell: "td",

			ContactContainer: "div.creditor_contact",
			ContactField:     "div.contact_field",
			RevealToggle:     "a.contact_toggle",
		},
		Sections: map[string]SectionConfig{
			SectionCreditScores: {
				Name:    SectionCreditScores,
				Shape:   ShapeGrid,
				Locator: Locator{HeadingPattern: "credit score", FallbackOrdinal: 0},
				Fields:  []string{"credit_score", "lender_rank", "score_scale", "score_commentary"},
				TextFields: []string{
					"lender_rank", "score_scale", "score_commentary",
				},
			},
			SectionPersonalInformation: {
				Name:    SectionPersonalInformation,
				Shape:   ShapeGrid,
				Locator: Locator{HeadingPattern: "personal information", FallbackOrdinal: 1},
				Fields: []string{
					"name", "also_known_as", "date_of_birth",
					"current_address", "previous_address", "employer",
					"credit_report_date",
				},
				TextFields: []string{
					"name", "also_known_as", "current_address",
					"previous_address", "employer",
				},
				DateFields: []string{"date_of_birth", "credit_report_date"},
			},
			SectionSummary: {
				Name:    SectionSummary,
				Shape:   ShapeGrid,
				Locator: Locator{HeadingPattern: "summary", FallbackOrdinal: 2},
				Fields: []string{
					"delinquent", "derogatory", "collection",
					"balances", "payments", "public_records",
					"inquiries_2_years",
				},
				// balances/payments keep their currency formatting
				TextFields: []string{"balances", "payments"},
			},
			sectionAccountTotals: {
				Name:        sectionAccountTotals,
				Shape:       ShapeGrid,
				Locator:     Locator{HeadingPattern: "summary", FallbackOrdinal: 2},
				GridOrdinal: 1,
				Fields: []string{
					"total_accounts", "open_accounts", "closed_accounts",
				},
			},
			SectionAccountHistory: {
				Name:       SectionAccountHistory,
				Shape:      ShapeAccountList,
				Locator:    Locator{HeadingPattern: "account history", FallbackOrdinal: 3},
				Fields:     accountFields,
				DateFields: accountDateFields,
			},
			SectionPublicRecords: {
				Name:    SectionPublicRecords,
				Shape:   ShapeGrid,
				Locator: Locator{HeadingPattern: "public records", FallbackOrdinal: 4},
				Fields: []string{
					"bankruptcy", "tax_lien", "legal_item",
					"medical_collection",
				},
			},
			SectionInquiries: {
				Name:    SectionInquiries,
				Shape:   ShapeRowList,
				Locator: Locator{HeadingPattern: "inquiries", FallbackOrdinal: 5},
				Fields:  []string{"creditor_name", "inquiry_date", "credit_bureau"},
			},
			SectionCreditorContacts: {
				Name:    SectionCreditorContacts,
				Shape:   ShapeInteractiveList,
				Locator: Locator{HeadingPattern: "creditor contacts", FallbackOrdinal: 6},
				Fields:  []string{"creditor_name", "address", "phone_number"},
			},
		},
	}
}
