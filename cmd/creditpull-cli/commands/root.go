package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath *string

var rootCmd = &cobra.Command{
	Use:   "creditpull-cli",
	Short: "creditpull-cli extracts normalized credit reports from captured or live report pages.",
}

func init() {
	configPath = rootCmd.PersistentFlags().String(
		"config", "",
		"Path to a json5 extraction config overriding the built-in one.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
