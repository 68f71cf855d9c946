package commands

import (
	"creditpull-backend/lib/document"
	"creditpull-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

var (
	fetchSections *[]string
	fetchOutput   *string
	fetchBrowser  *bool
	fetchProxy    *string
)

func init() {
	fetchSections = fetchCmd.Flags().StringSlice("sections", nil, "Section names to extract, defaults to all.")
	fetchOutput = fetchCmd.Flags().String("out", "", "File to write the report json to, defaults to stdout.")
	fetchBrowser = fetchCmd.Flags().Bool("browser", false, "Fetch through a headless browser instead of a plain http client. Required for sections hidden behind reveal toggles.")
	fetchProxy = fetchCmd.Flags().String("proxy", "", "Proxy url for the headless browser.")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetches a report page and extracts a normalized report from it.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		var doc document.Document
		if *fetchBrowser {
			browser, err := document.NewBrowser(document.BrowserOptions{
				Headless: true,
				ProxyUrl: *fetchProxy,
			})
			if err != nil {
				serviceutil.Fatal("launch browser", err)
			}
			defer browser.Close()

			doc, err = browser.OpenPage(ctx, args[0])
			if err != nil {
				serviceutil.Fatal("open report page", err)
			}
		} else {
			var err error
			doc, err = document.FetchSnapshot(ctx, document.NewSnapshotClient(), args[0])
			if err != nil {
				serviceutil.Fatal("fetch report page", err)
			}
		}

		report := runExtraction(ctx, doc, *fetchSections)
		printScores(report)
		writeReport(report, *fetchOutput)
	},
}
