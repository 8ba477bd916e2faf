package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"eventdesk/internal/config"
)

func main() {
	root := &cobra.Command{
		Use:           "eventdesk",
		Short:         "Event operations desk for the events backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), migrateCmd(), watchCmd())

	if err := root.Execute(); err != nil {
		slog.Error("eventdesk failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and installs the JSON logger at the
// configured level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	return cfg, nil
}
