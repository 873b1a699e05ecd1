package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "juntosmais",
	Short: "JuntosMais donation platform front end",
	Long: `JuntosMais serves the donation platform web interface: campaign
browsing, donations with receipts, and account management. All business
rules live in the backend API; this process only renders and relays.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
