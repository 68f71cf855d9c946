package commands

import (
	"os"

	"creditpull-backend/lib/document"
	"creditpull-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

var (
	parseSections *[]string
	parseOutput   *string
)

func init() {
	parseSections = parseCmd.Flags().StringSlice("sections", nil, "Section names to extract, defaults to all.")
	parseOutput = parseCmd.Flags().String("out", "", "File to write the report json to, defaults to stdout.")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <path/to/report.html>",
	Short: "Extracts a normalized report out of a captured report page.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			serviceutil.Fatal("open report page", err)
		}
		doc, err := document.FromReader(f)
		f.Close()
		if err != nil {
			serviceutil.Fatal("parse report page", err)
		}

		report := runExtraction(cmd.Context(), doc, *parseSections)
		printScores(report)
		writeReport(report, *parseOutput)
	},
}
