package main

import (
	"context"

	"creditpull-backend/cmd/creditpull-cli/commands"
	"creditpull-backend/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "creditpull-cli")
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
