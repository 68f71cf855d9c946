package telemetry

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/lmittmann/tint"
)

func InitSlog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}

var setupTestEnvironments = map[string]bool{}

// sets up telemetry in a testing environment, ensuring that it isn't
// set up more than once. exporter setup failures are tolerated since
// most test environments don't run a collector.
func SetupForTesting(t testing.TB, serviceName string) func() {
	if setupTestEnvironments[serviceName] {
		return func() {}
	}
	setupTestEnvironments[serviceName] = true

	InitSlog(true)

	ctx := context.Background()
	tel, err := SetupFromEnv(ctx, serviceName)
	if err != nil {
		t.Logf("telemetry disabled: %v", err)
		return func() {}
	}
	return func() {
		err := tel.Shutdown(ctx)
		if err != nil {
			t.Fatal(err)
		}
	}
}
