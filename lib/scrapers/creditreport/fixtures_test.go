package creditreport_test

import (
	"strings"
	"testing"

	"creditpull-backend/lib/document"

	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, html string) document.Document {
	t.Helper()
	doc, err := document.FromHTML(html)
	require.NoError(t, err)
	return doc
}

func str(v string) *string {
	return &v
}

func gridColumn(cells ...string) string {
	var b strings.Builder
	b.WriteString(`<div class="rpt_content_column">`)
	for _, c := range cells {
		b.WriteString(`<div class="rpt_content_cell">` + c + `</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func gridTable(columns ...string) string {
	return `<div class="rpt_content_table">` + strings.Join(columns, "") + `</div>`
}

func reportSection(heading string, body ...string) string {
	return `<div class="rpt_content_wrapper"><div class="rpt_fullReport_header">` +
		heading + `</div>` + strings.Join(body, "") + `</div>`
}

func accountBlock(name string, parts ...string) string {
	return `<div class="account_block"><div class="account_name">` + name + `</div>` +
		strings.Join(parts, "") + `</div>`
}

func paymentMonth(label, status, extraClass string) string {
	return `<div class="payment_month ` + extraClass + `">` +
		`<span class="month_label">` + label + `</span>` +
		`<span class="status_label">` + status + `</span></div>`
}

func bureauBlock(months ...string) string {
	return `<div class="payment_history_bureau">` + strings.Join(months, "") + `</div>`
}

func paymentHistory(blocks ...string) string {
	return `<div class="payment_history">` + strings.Join(blocks, "") + `</div>`
}

func daysLateColumn(counts ...string) string {
	var b strings.Builder
	b.WriteString(`<div class="days_late_column">`)
	for _, c := range counts {
		b.WriteString(`<span class="days_late_count">` + c + `</span>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func daysLateTable(columns ...string) string {
	return `<div class="days_late_table"><div class="days_late_header">Days Late</div>` +
		strings.Join(columns, "") + `</div>`
}

func contactBlock(fields ...string) string {
	var b strings.Builder
	b.WriteString(`<div class="creditor_contact">`)
	for _, f := range fields {
		b.WriteString(`<div class="contact_field">` + f + `</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// faultOnFirst panics when First is asked for one specific selector,
// simulating a subtree the underlying page handle can no longer serve.
type faultOnFirst struct {
	document.Element
	selector string
}

func (f faultOnFirst) First(selector string) document.Element {
	if selector == f.selector {
		panic("subtree detached")
	}
	return f.Element.First(selector)
}

type faultOnSelect struct {
	document.Element
	selector string
}

func (f faultOnSelect) Select(selector string) []document.Element {
	if selector == f.selector {
		panic("subtree detached")
	}
	return f.Element.Select(selector)
}

// faultInjector rewraps one element of one selection so a single
// subtree misbehaves while the rest of the document stays healthy.
type faultInjector struct {
	document.Document
	at    string
	index int
	wrap  func(document.Element) document.Element
}

func (d faultInjector) Select(selector string) []document.Element {
	els := d.Document.Select(selector)
	if selector == d.at && d.index < len(els) {
		els[d.index] = d.wrap(els[d.index])
	}
	return els
}

type elementInjector struct {
	document.Element
	at    string
	index int
	wrap  func(document.Element) document.Element
}

func (e elementInjector) Select(selector string) []document.Element {
	els := e.Element.Select(selector)
	if selector == e.at && e.index < len(els) {
		els[e.index] = e.wrap(els[e.index])
	}
	return els
}
