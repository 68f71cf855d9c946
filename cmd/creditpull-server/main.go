package main

import (
	"flag"
	"net/http"

	"creditpull-backend/lib/configutil"
	"creditpull-backend/lib/serviceutil"
)

type Config struct {
	Port    int           `json:"port"`
	Reports ReportsConfig `json:"reports"`
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}

	mux := http.NewServeMux()

	err = InitReports(mux, cfg.Reports)
	if err != nil {
		serviceutil.Fatal("init reports", err)
	}

	go serviceutil.StartHttpServer(cfg.Port, mux)
	<-ctx.Done()
}
