package document

import (
	"context"
	"log/slog"
	"strings"

	"creditpull-backend/lib/htmlutil"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Live reads a rod page in place. Selection errors degrade to empty
// results rather than faults: a missing element on a live page means
// the same thing as a missing element in a snapshot.
type Live struct {
	page *rod.Page
	el   *rod.Element
}

func FromPage(page *rod.Page) *Live {
	return &Live{page: page}
}

func (l *Live) elements(selector string) (rod.Elements, error) {
	if l.el != nil {
		return l.el.Elements(selector)
	}
	return l.page.Elements(selector)
}

func (l *Live) Select(selector string) []Element {
	els, err := l.elements(selector)
	if err != nil {
		slog.Debug("live select failed", "selector", selector, "err", err)
		return nil
	}
	out := make([]Element, len(els))
	for i, el := range els {
		out[i] = &Live{page: l.page, el: el}
	}
	return out
}

func (l *Live) First(selector string) Element {
	els, err := l.elements(selector)
	if err != nil || len(els) == 0 {
		return nil
	}
	return &Live{page: l.page, el: els.First()}
}

func (l *Live) Text() string {
	if l.el == nil {
		return ""
	}
	text, err := l.el.Text()
	if err != nil {
		slog.Debug("live text read failed", "err", err)
		return ""
	}
	return htmlutil.NormalizeSpace(text)
}

func (l *Live) ClassList() []string {
	if l.el == nil {
		return nil
	}
	class, err := l.el.Attribute("class")
	if err != nil || class == nil {
		return nil
	}
	return strings.Fields(*class)
}

func (l *Live) Activate(ctx context.Context) error {
	if l.el == nil {
		return nil
	}
	return l.el.Context(ctx).Click(proto.InputMouseButtonLeft, 1)
}
