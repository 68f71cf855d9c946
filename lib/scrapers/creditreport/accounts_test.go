package creditreport_test

import (
	"testing"

	"creditpull-backend/lib/document"
	"creditpull-backend/lib/scrapers/creditreport"

	"github.com/stretchr/testify/require"
)

var accountTestConfig = creditreport.SectionConfig{
	Name:    creditreport.SectionAccountHistory,
	Shape:   creditreport.ShapeAccountList,
	Locator: creditreport.Locator{HeadingPattern: "account history", FallbackOrdinal: 0},
	Fields:  []string{"account_number", "balance", "date_opened"},
}

func fullAccountBlock(name string) string {
	return accountBlock(name,
		gridTable(
			gridColumn("", "Account #:", "Balance:", "Date Opened:"),
			gridColumn("TransUnion", "1234XXXX", "$652.05", "4/1/2019"),
			gridColumn("Experian", "1234XXXX", "$650.00", "4/1/2019"),
			gridColumn("Equifax", "--", "$652.05", "4/1/2019"),
		),
		paymentHistory(
			bureauBlock(
				paymentMonth("Jan", "OK", "status-ok"),
				paymentMonth("Feb", "30", "status-late30"),
			),
			bureauBlock(
				paymentMonth("Jan", "OK", "status-ok"),
				paymentMonth("Feb", "OK", "status-ok"),
			),
			bureauBlock(
				paymentMonth("Jan", "OK", "status-ok"),
				paymentMonth("Feb", "OK", "status-ok"),
			),
		),
		daysLateTable(
			daysLateColumn("1", "2", "3"),
			daysLateColumn("0", "0", "0"),
			daysLateColumn("4"),
		),
	)
}

func TestExtractAccounts(t *testing.T) {
	sel := creditreport.DefaultConfig().Selectors
	doc := mustDoc(t, reportSection("Account History", fullAccountBlock("ACME BANK")))

	accounts := creditreport.ExtractAccounts(doc, sel, accountTestConfig)
	require.Len(t, accounts, 1)

	acct := accounts[0]
	require.Equal(t, "ACME BANK", acct.Name)
	require.Equal(t, "$652.05", *acct.Fields["transunion"]["balance"])
	require.Equal(t, "$650.00", *acct.Fields["experian"]["balance"])
	require.Equal(t, "--", *acct.Fields["equifax"]["account_number"])

	require.Len(t, acct.PaymentHistory["transunion"], 2)
	require.Equal(t, creditreport.PaymentMonth{
		Month:       "Feb",
		Status:      "30",
		StatusClass: "late30",
	}, acct.PaymentHistory["transunion"][1])

	require.Equal(t, creditreport.DaysLate{Late30: "1", Late60: "2", Late90: "3"}, acct.DaysLate["transunion"])
	require.Equal(t, creditreport.DaysLate{Late30: "0", Late60: "0", Late90: "0"}, acct.DaysLate["experian"])
	// missing buckets fall back to zero, see DaysLate
	require.Equal(t, creditreport.DaysLate{Late30: "4", Late60: "0", Late90: "0"}, acct.DaysLate["equifax"])
}

func TestExtractAccountsSchemaStable(t *testing.T) {
	sel := creditreport.DefaultConfig().Selectors

	// bare container: no grid, no calendars
	doc := mustDoc(t, reportSection("Account History", accountBlock("EMPTY CO")))

	accounts := creditreport.ExtractAccounts(doc, sel, accountTestConfig)
	require.Len(t, accounts, 1)

	acct := accounts[0]
	require.Nil(t, acct.PaymentHistory)
	require.Nil(t, acct.DaysLate)
	for _, bureau := range creditreport.Bureaus {
		require.Len(t, acct.Fields[bureau], len(accountTestConfig.Fields))
		for _, name := range accountTestConfig.Fields {
			v, ok := acct.Fields[bureau][name]
			require.True(t, ok)
			require.Nil(t, v)
		}
	}
}

func TestExtractAccountsPartialPaymentHistory(t *testing.T) {
	sel := creditreport.DefaultConfig().Selectors

	// two bureau blocks cannot be attributed reliably
	doc := mustDoc(t, reportSection("Account History", accountBlock("PARTIAL CO",
		paymentHistory(
			bureauBlock(paymentMonth("Jan", "OK", "status-ok")),
			bureauBlock(paymentMonth("Jan", "OK", "status-ok")),
		),
	)))

	accounts := creditreport.ExtractAccounts(doc, sel, accountTestConfig)
	require.Len(t, accounts, 1)
	require.Nil(t, accounts[0].PaymentHistory)
}

func TestExtractAccountsFaultIsolation(t *testing.T) {
	sel := creditreport.DefaultConfig().Selectors
	html := reportSection("Account History",
		fullAccountBlock("FIRST BANK"),
		fullAccountBlock("SECOND BANK"),
		fullAccountBlock("THIRD BANK"),
	)

	// the middle account's payment history subtree blows up on access
	doc := faultInjector{
		Document: mustDoc(t, html),
		at:       sel.Section,
		index:    0,
		wrap: func(section document.Element) document.Element {
			return elementInjector{
				Element: section,
				at:      sel.AccountContainer,
				index:   1,
				wrap: func(container document.Element) document.Element {
					return faultOnFirst{Element: container, selector: sel.PaymentHistory}
				},
			}
		},
	}

	accounts := creditreport.ExtractAccounts(doc, sel, accountTestConfig)
	require.Len(t, accounts, 3)

	require.Equal(t, "SECOND BANK", accounts[1].Name)
	require.Nil(t, accounts[1].PaymentHistory)
	require.Nil(t, accounts[1].DaysLate)
	for _, bureau := range creditreport.Bureaus {
		require.Len(t, accounts[1].Fields[bureau], len(accountTestConfig.Fields))
	}

	// neighbors unaffected
	require.NotNil(t, accounts[0].PaymentHistory)
	require.NotNil(t, accounts[2].PaymentHistory)
	require.Equal(t, "$652.05", *accounts[2].Fields["transunion"]["balance"])
}
