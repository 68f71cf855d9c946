// Package document is the boundary between the extraction pipeline and
// whatever is actually holding the report page: a live headless-browser
// tab, a fetched snapshot, or an inline HTML string in a test.
//
// The pipeline only ever needs four operations: structural selection,
// trimmed text content, the class-token list, and toggle activation.
// Navigation, waiting and retries stay on the collaborator's side of
// this line.
package document

import "context"

type Document interface {
	// Select returns every element under this node matching the
	// selector, in document order.
	Select(selector string) []Element
	// First returns the first match, or nil when there is none.
	First(selector string) Element
}

type Element interface {
	Document

	// Text is the element's text content, trimmed and with inner
	// whitespace collapsed.
	Text() string
	// ClassList is the element's class attribute split into tokens.
	ClassList() []string
	// Activate triggers the element as a UI toggle. Fire and forget:
	// content expansion is asynchronous and the caller is responsible
	// for any settling delay before re-reading the document.
	Activate(ctx context.Context) error
}
