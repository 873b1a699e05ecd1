package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ScarMeireles/JuntosMais/internal/config"
	"github.com/ScarMeireles/JuntosMais/internal/logging"
	"github.com/ScarMeireles/JuntosMais/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Run: func(cmd *cobra.Command, args []string) {
		logging.New()
		cfg := config.New()

		srv, err := server.New(cfg)
		if err != nil {
			slog.Error("Assembling server failed", "error", err)
			os.Exit(1)
		}
		if err := srv.Start(); err != nil {
			slog.Error("Server exited with error", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
