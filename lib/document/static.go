package document

import (
	"context"
	"io"
	"strings"

	"creditpull-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Static wraps a parsed HTML snapshot. Snapshots are fully expanded at
// capture time, so Activate is a no-op.
type Static struct {
	sel *goquery.Selection
}

func FromReader(r io.Reader) (*Static, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Static{sel: doc.Selection}, nil
}

func FromHTML(html string) (*Static, error) {
	return FromReader(strings.NewReader(html))
}

func (s *Static) Select(selector string) []Element {
	found := s.sel.Find(selector)
	out := make([]Element, 0, found.Length())
	found.Each(func(_ int, sel *goquery.Selection) {
		out = append(out, &Static{sel: sel})
	})
	return out
}

func (s *Static) First(selector string) Element {
	found := s.sel.Find(selector)
	if found.Length() == 0 {
		return nil
	}
	return &Static{sel: found.First()}
}

func (s *Static) Text() string {
	if len(s.sel.Nodes) == 0 {
		return ""
	}
	return htmlutil.CleanNodeText(s.sel.Nodes[0])
}

func (s *Static) ClassList() []string {
	return htmlutil.ClassTokens(s.sel)
}

func (s *Static) Activate(ctx context.Context) error {
	return nil
}
