package main

import (
	"net/http"

	"creditpull-backend/lib/configutil"
	configlibsql "creditpull-backend/lib/configutil/libsql"
	"creditpull-backend/lib/scrapers/creditreport"
	"creditpull-backend/services/reports"
	"creditpull-backend/services/reports/db"
)

type ReportsConfig struct {
	Database configlibsql.Struct `json:"database"`
	// path to a json5 file overriding the built-in extraction config,
	// for when the site shifts its markup
	ExtractionConfig string `json:"extraction_config"`
}

func InitReports(mux *http.ServeMux, cfg ReportsConfig) error {
	database, err := cfg.Database.OpenDB(db.Schema)
	if err != nil {
		return err
	}

	extraction := creditreport.DefaultConfig()
	if cfg.ExtractionConfig != "" {
		extraction, err = configutil.ReadConfig[creditreport.Config](cfg.ExtractionConfig)
		if err != nil {
			return err
		}
	}

	mux.Handle("/", reports.NewRouter(reports.NewService(database), extraction))
	return nil
}
