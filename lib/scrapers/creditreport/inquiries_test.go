package creditreport_test

import (
	"testing"

	"creditpull-backend/lib/scrapers/creditreport"

	"github.com/stretchr/testify/require"
)

func TestExtractInquiryRows(t *testing.T) {
	cfg := creditreport.DefaultConfig()
	section := cfg.Sections[creditreport.SectionInquiries]

	rows := creditreport.ExtractInquiryRows(mustDoc(t, inquiriesSection()), cfg.Selectors, section)

	// header row and nameless row are dropped
	require.Equal(t, []creditreport.InquiryRow{
		{CreditorName: "ACME BANK", InquiryDate: "01/15/2025", CreditBureau: "TransUnion"},
		{CreditorName: "CARD CO", InquiryDate: "03/02/2025", CreditBureau: "Experian"},
	}, rows)
}

func TestExtractInquiryRowsExactHeadingOnly(t *testing.T) {
	cfg := creditreport.DefaultConfig()
	section := cfg.Sections[creditreport.SectionInquiries]

	// a renamed heading is a different section, not a candidate for
	// ordinal guessing
	doc := mustDoc(t, reportSection("Inquiry History",
		`<table><tr><td>ACME BANK</td><td>01/15/2025</td><td>TransUnion</td></tr></table>`,
	))
	require.Nil(t, creditreport.ExtractInquiryRows(doc, cfg.Selectors, section))
}

func TestExtractInquiryRowsShortRows(t *testing.T) {
	cfg := creditreport.DefaultConfig()
	section := cfg.Sections[creditreport.SectionInquiries]

	doc := mustDoc(t, reportSection("Inquiries",
		`<table><tr><td>ACME BANK</td><td>01/15/2025</td></tr></table>`,
	))
	require.Empty(t, creditreport.ExtractInquiryRows(doc, cfg.Selectors, section))
}
