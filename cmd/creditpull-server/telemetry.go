package main

import (
	"context"

	"creditpull-backend/lib/serviceutil"
	"creditpull-backend/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	t, err := telemetry.SetupFromEnv(ctx, "creditpull-server")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		t.Shutdown(context.Background())
	}()

	telemetry.InitSlog(verbose)
}
