package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"creditpull-backend/lib/configutil"
	"creditpull-backend/lib/document"
	"creditpull-backend/lib/scrapers/creditreport"
	"creditpull-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
)

func extractionConfig() creditreport.Config {
	if *configPath == "" {
		return creditreport.DefaultConfig()
	}
	cfg, err := configutil.ReadConfig[creditreport.Config](*configPath)
	if err != nil {
		serviceutil.Fatal("read extraction config", err)
	}
	return cfg
}

func runExtraction(ctx context.Context, doc document.Document, sections []string) creditreport.Report {
	cfg := extractionConfig()

	raw, err := creditreport.ExtractAll(ctx, doc, cfg, creditreport.Options{
		Sections: sections,
	})
	if err != nil {
		serviceutil.Fatal("extract report", err)
	}

	report := creditreport.BuildReport(raw, cfg)
	if missing := creditreport.ValidateReport(report); len(missing) > 0 {
		slog.Warn("report is missing foundational sections", "missing", missing)
	}
	return report
}

func writeReport(report creditreport.Report, output string) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		serviceutil.Fatal("encode report", err)
	}

	if output == "" {
		fmt.Println(string(data))
		return
	}
	err = os.WriteFile(output, data, 0644)
	if err != nil {
		serviceutil.Fatal("write report", err)
	}
	slog.Info("wrote report", "path", output, "bytes", len(data))
}

func printScores(report creditreport.Report) {
	if report.CreditScores == nil {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Bureau", "Score", "Change"})

	for _, bureau := range creditreport.Bureaus {
		fields := report.CreditScores[bureau]
		t.AppendRow(table.Row{
			bureau,
			cellValue(fields["credit_score"]),
			cellValue(fields["score_change"]),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func cellValue(v any) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(v)
}
