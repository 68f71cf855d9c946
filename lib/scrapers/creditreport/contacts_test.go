package creditreport_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"creditpull-backend/lib/document"
	"creditpull-backend/lib/scrapers/creditreport"

	"github.com/stretchr/testify/require"
)

// toggleRecorder rewraps the reveal toggles so activations can be
// observed; snapshots otherwise treat activation as a no-op.
type toggleRecorder struct {
	document.Document
	selector string
	log      *[]string
	fail     bool
}

func (d toggleRecorder) Select(selector string) []document.Element {
	els := d.Document.Select(selector)
	if selector == d.selector {
		for i := range els {
			els[i] = recordingToggle{Element: els[i], log: d.log, fail: d.fail}
		}
	}
	return els
}

type recordingToggle struct {
	document.Element
	log  *[]string
	fail bool
}

func (r recordingToggle) Activate(ctx context.Context) error {
	if r.fail {
		return errors.New("toggle gone")
	}
	*r.log = append(*r.log, r.Text())
	return nil
}

func TestExtractContacts(t *testing.T) {
	cfg := creditreport.DefaultConfig()
	section := cfg.Sections[creditreport.SectionCreditorContacts]

	var activated []string
	doc := toggleRecorder{
		Document: mustDoc(t, contactsSection()),
		selector: cfg.Selectors.RevealToggle,
		log:      &activated,
	}

	contacts := creditreport.ExtractContacts(context.Background(), doc, cfg.Selectors, section, time.Millisecond)

	// only "show" toggles get activated
	require.Equal(t, []string{"Show Phone Number"}, activated)

	require.Len(t, contacts, 2)
	require.Equal(t, "ACME BANK", *contacts[0].Fields["creditor_name"])
	require.Equal(t, "800-555-0100", *contacts[0].Fields["phone_number"])
	require.Equal(t, "CARD CO", *contacts[1].Fields["creditor_name"])
	require.Nil(t, contacts[1].Fields["address"])
}

func TestExtractContactsActivationFailure(t *testing.T) {
	cfg := creditreport.DefaultConfig()
	section := cfg.Sections[creditreport.SectionCreditorContacts]

	var activated []string
	doc := toggleRecorder{
		Document: mustDoc(t, contactsSection()),
		selector: cfg.Selectors.RevealToggle,
		log:      &activated,
		fail:     true,
	}

	// nothing revealed, but the already-visible fields still come out
	contacts := creditreport.ExtractContacts(context.Background(), doc, cfg.Selectors, section, time.Hour)
	require.Empty(t, activated)
	require.Len(t, contacts, 2)
}

func TestExtractContactsCancelled(t *testing.T) {
	cfg := creditreport.DefaultConfig()
	section := cfg.Sections[creditreport.SectionCreditorContacts]

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var activated []string
	doc := toggleRecorder{
		Document: mustDoc(t, contactsSection()),
		selector: cfg.Selectors.RevealToggle,
		log:      &activated,
	}

	contacts := creditreport.ExtractContacts(ctx, doc, cfg.Selectors, section, time.Hour)
	require.Nil(t, contacts)
}
