package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "driverelay",
	Short:   "HTTP relay that forwards file uploads to Google Drive",
	Long: `Driverelay is a stateless HTTP relay that accepts upload requests,
attaches the caller's OAuth2 bearer token and forwards the file to the
Google Drive upload API, returning a normalized JSON response.`,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env: RELAY_LOG_LEVEL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
