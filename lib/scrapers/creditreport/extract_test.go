package creditreport_test

import (
	"context"
	"testing"
	"time"

	"creditpull-backend/lib/document"
	"creditpull-backend/lib/scrapers/creditreport"

	"github.com/stretchr/testify/require"
)

func personalInformationSection() string {
	return reportSection("Personal Information",
		gridTable(
			gridColumn("", "Name:", "AKA:", "DOB:", "Current Address:", "Previous Address:", "Employer:", "Report Date:"),
			gridColumn("TransUnion", "JOHN Q CONSUMER", "--", "4/1/1990", "12 MAIN ST", "--", "ACME CORP", "12/10/2025"),
			gridColumn("Experian", "JOHN CONSUMER", "--", "4/1/1990", "12 MAIN ST", "8 OAK AVE", "ACME CORP", "12/10/2025"),
			gridColumn("Equifax", "JOHN Q CONSUMER", "--", "4/1/1990", "12 MAIN ST", "--", "--", "12/10/2025"),
		),
	)
}

func summarySection() string {
	return reportSection("Summary",
		gridTable(
			gridColumn("", "Delinquent:", "Derogatory:", "Collection:", "Balances:", "Payments:", "Public Records:", "Inquiries (2 yrs):"),
			gridColumn("TransUnion", "2", "0", "1", "$12,345.00", "$652.05", "0", "3"),
			gridColumn("Experian", "2", "0", "1", "$12,340.00", "$650.00", "0", "2"),
			gridColumn("Equifax", "1", "0", "1", "$12,345.00", "$652.05", "0", "3"),
		),
		gridTable(
			gridColumn("", "Total Accounts:", "Open Accounts:", "Closed Accounts:"),
			gridColumn("TransUnion", "12", "7", "5"),
			gridColumn("Experian", "12", "7", "5"),
			gridColumn("Equifax", "11", "7", "4"),
		),
	)
}

func inquiriesSection() string {
	return reportSection("Inquiries",
		`<table>`+
			`<tr><th>Creditor</th><th>Date</th><th>Bureau</th></tr>`+
			`<tr><td>ACME BANK</td><td>01/15/2025</td><td>TransUnion</td></tr>`+
			`<tr><td>CARD CO</td><td>03/02/2025</td><td>Experian</td></tr>`+
			`<tr><td></td><td>03/02/2025</td><td>Experian</td></tr>`+
			`</table>`,
	)
}

func contactsSection() string {
	return reportSection("Creditor Contacts",
		`<a class="contact_toggle">Show Phone Number</a>`,
		`<a class="contact_toggle">Hide Details</a>`,
		contactBlock("ACME BANK", "12 MAIN ST", "800-555-0100"),
		contactBlock("CARD CO", "", "800-555-0199"),
		contactBlock("", " ", ""),
	)
}

func fullReportHTML() string {
	return `<html><body>` +
		scoresSection("Credit Score") +
		personalInformationSection() +
		summarySection() +
		reportSection("Account History",
			fullAccountBlock("ACME BANK"),
			fullAccountBlock("CARD CO"),
		) +
		reportSection("Public Records",
			gridTable(
				gridColumn("", "Bankruptcy:", "Tax Lien:", "Legal Item:", "Medical Collection:"),
				gridColumn("TransUnion", "0", "0", "1", "--"),
				gridColumn("Experian", "0", "0", "1", "--"),
				gridColumn("Equifax", "0", "0", "0", "--"),
			),
		) +
		inquiriesSection() +
		contactsSection() +
		`</body></html>`
}

func testOptions() creditreport.Options {
	return creditreport.Options{RevealSettle: time.Millisecond}
}

func TestExtractAll(t *testing.T) {
	doc := mustDoc(t, fullReportHTML())
	cfg := creditreport.DefaultConfig()

	raw, err := creditreport.ExtractAll(context.Background(), doc, cfg, testOptions())
	require.NoError(t, err)

	require.Equal(t, "721", *raw.CreditScores["transunion"]["credit_score"])
	require.Equal(t, "JOHN Q CONSUMER", *raw.PersonalInformation["transunion"]["name"])

	// account totals from the second grid merge into the summary maps
	require.Equal(t, "2", *raw.Summary["transunion"]["delinquent"])
	require.Equal(t, "12", *raw.Summary["transunion"]["total_accounts"])
	require.Equal(t, "4", *raw.Summary["equifax"]["closed_accounts"])

	require.Len(t, raw.AccountHistory, 2)
	require.Equal(t, "CARD CO", raw.AccountHistory[1].Name)
	require.Nil(t, raw.AccountPagination)

	require.Equal(t, "1", *raw.PublicRecords["transunion"]["legal_item"])

	require.NotNil(t, raw.Inquiries)
	require.Equal(t, "3", *raw.Inquiries.Count["transunion"])
	require.Equal(t, "2", *raw.Inquiries.Count["experian"])
	require.Len(t, raw.Inquiries.Details, 2)
	require.Equal(t, "ACME BANK", raw.Inquiries.Details[0].CreditorName)

	require.Len(t, raw.CreditorContacts, 2)
	require.Equal(t, "ACME BANK", *raw.CreditorContacts[0].Fields["creditor_name"])
	require.Nil(t, raw.CreditorContacts[1].Fields["address"])
}

func TestExtractAllNilDocument(t *testing.T) {
	_, err := creditreport.ExtractAll(context.Background(), nil, creditreport.DefaultConfig(), testOptions())
	require.ErrorIs(t, err, creditreport.ErrNoDocument)
}

func TestExtractAllSectionFilter(t *testing.T) {
	doc := mustDoc(t, fullReportHTML())
	cfg := creditreport.DefaultConfig()

	opts := testOptions()
	opts.Sections = []string{creditreport.SectionCreditScores, creditreport.SectionSummary}

	raw, err := creditreport.ExtractAll(context.Background(), doc, cfg, opts)
	require.NoError(t, err)

	require.NotNil(t, raw.CreditScores)
	require.NotNil(t, raw.Summary)
	require.Nil(t, raw.PersonalInformation)
	require.Nil(t, raw.AccountHistory)
	require.Nil(t, raw.Inquiries)
	require.Nil(t, raw.CreditorContacts)
}

func TestExtractAllSectionIsolation(t *testing.T) {
	cfg := creditreport.DefaultConfig()

	// the personal information section, second on the page, panics as
	// soon as its grid is read
	doc := faultInjector{
		Document: mustDoc(t, fullReportHTML()),
		at:       cfg.Selectors.Section,
		index:    1,
		wrap: func(section document.Element) document.Element {
			return faultOnSelect{Element: section, selector: cfg.Selectors.Grid}
		},
	}

	raw, err := creditreport.ExtractAll(context.Background(), doc, cfg, testOptions())
	require.NoError(t, err)

	require.Nil(t, raw.PersonalInformation)

	// every other section still extracted
	require.NotNil(t, raw.CreditScores)
	require.NotNil(t, raw.Summary)
	require.Len(t, raw.AccountHistory, 2)
	require.NotNil(t, raw.PublicRecords)
	require.NotNil(t, raw.Inquiries)
	require.NotEmpty(t, raw.CreditorContacts)
}

func TestExtractAllPagination(t *testing.T) {
	cfg := creditreport.DefaultConfig()

	html := reportSection("Account History",
		accountBlock("A1"), accountBlock("A2"), accountBlock("A3"),
		accountBlock("A4"), accountBlock("A5"),
	)
	doc := mustDoc(t, html)

	opts := testOptions()
	opts.Sections = []string{creditreport.SectionAccountHistory}
	opts.AccountPage = &creditreport.Page{Limit: 2, Offset: 0}

	raw, err := creditreport.ExtractAll(context.Background(), doc, cfg, opts)
	require.NoError(t, err)

	require.Len(t, raw.AccountHistory, 2)
	require.Equal(t, "A1", raw.AccountHistory[0].Name)
	require.Equal(t, &creditreport.Pagination{
		Total:   5,
		HasMore: true,
		Limit:   2,
		Offset:  0,
	}, raw.AccountPagination)

	t.Run("last page", func(t *testing.T) {
		opts.AccountPage = &creditreport.Page{Limit: 2, Offset: 4}
		raw, err := creditreport.ExtractAll(context.Background(), doc, cfg, opts)
		require.NoError(t, err)
		require.Len(t, raw.AccountHistory, 1)
		require.Equal(t, "A5", raw.AccountHistory[0].Name)
		require.False(t, raw.AccountPagination.HasMore)
	})

	t.Run("offset past the end", func(t *testing.T) {
		opts.AccountPage = &creditreport.Page{Limit: 2, Offset: 50}
		raw, err := creditreport.ExtractAll(context.Background(), doc, cfg, opts)
		require.NoError(t, err)
		require.Empty(t, raw.AccountHistory)
		require.Equal(t, 5, raw.AccountPagination.Total)
		require.False(t, raw.AccountPagination.HasMore)
	})
}
