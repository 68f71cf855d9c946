package document

import (
	"context"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Browser owns a headless chromium instance and hands out live pages.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

type BrowserOptions struct {
	Headless bool
	ProxyUrl string
}

func NewBrowser(opts BrowserOptions) (*Browser, error) {
	l := launcher.New().Headless(opts.Headless)
	if opts.ProxyUrl != "" {
		l = l.Proxy(opts.ProxyUrl)
	}

	url, err := l.Launch()
	if err != nil {
		return nil, err
	}
	browser := rod.New().ControlURL(url)
	err = browser.Connect()
	if err != nil {
		l.Kill()
		return nil, err
	}

	return &Browser{
		browser:  browser,
		launcher: l,
	}, nil
}

// OpenPage navigates a fresh tab to the url and waits for it to load.
func (b *Browser) OpenPage(ctx context.Context, url string) (*Live, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, err
	}
	page = page.Context(ctx)
	err = page.WaitLoad()
	if err != nil {
		return nil, err
	}
	return FromPage(page), nil
}

func (b *Browser) Close() error {
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			return err
		}
	}
	if b.launcher != nil {
		b.launcher.Kill()
	}
	return nil
}
