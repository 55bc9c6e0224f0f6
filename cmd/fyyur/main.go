// cmd/fyyur/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"fyyur/internal/config"
	"fyyur/internal/db"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "fyyur",
	Short:        "Fyyur venue and artist booking directory",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

// openDatabase loads configuration, creates the database when missing and
// connects to it.
func openDatabase(ctx context.Context) (*config.Config, *db.Database, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := db.CreateDatabaseIfNotExists(ctx, cfg.DatabaseURL); err != nil {
		return nil, nil, fmt.Errorf("ensure database exists: %w", err)
	}

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Connected to database (environment %s)", cfg.Environment)
	return cfg, database, nil
}
