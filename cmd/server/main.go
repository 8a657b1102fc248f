// Package main is the entry point for the level server and tools
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/fps-level/cmd/server/client"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "fps-level",
	Short: "FPS level generator and query server",
	Long: `fps-level generates the apartment level of the shooter prototype, builds its
geometry and serves wall collision and tactical cover queries over gRPC.`,
	PersistentPreRunE: configureLogging,
	SilenceUsage:      true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func configureLogging(_ *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}
