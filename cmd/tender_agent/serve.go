package main

import (
	"github.com/spf13/cobra"

	"github.com/thabo/tender-insight/internal/engine"
	"github.com/thabo/tender-insight/internal/server"
)

var (
	servePort  int
	serveDBURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  "Serves the analysis engine over HTTP, with optional PostgreSQL-backed scoring history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		port := cfg.Port
		if servePort != 0 {
			port = servePort
		}
		databaseURL := cfg.DatabaseURL
		if serveDBURL != "" {
			databaseURL = serveDBURL
		}

		eng, err := engine.New(cfg.EngineOptions(log))
		if err != nil {
			return err
		}

		srv, err := server.New(server.Config{Port: port, DatabaseURL: databaseURL}, eng, log)
		if err != nil {
			return err
		}
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP listen port (overrides config)")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL URL for scoring history (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
