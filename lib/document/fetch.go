package document

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"creditpull-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

// NewSnapshotClient builds an http client suitable for pulling saved
// report pages off a protected host.
func NewSnapshotClient() *resty.Client {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err == nil {
		client.SetCookieJar(jar)
	}
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "document/snapshot")

	return client
}

// FetchSnapshot downloads a report page and parses it as a static
// document.
func FetchSnapshot(ctx context.Context, client *resty.Client, url string) (*Static, error) {
	res, err := client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, err
	}
	if res.StatusCode() >= 400 {
		return nil, fmt.Errorf("fetch snapshot: status %d", res.StatusCode())
	}
	return FromReader(bytes.NewBuffer(res.Body()))
}
