package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"fyyur/internal/db/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)
		_, database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := migrations.RunMigrations(ctx, database.DB); err != nil {
			return err
		}
		log.Println("Migrations up to date")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the most recently applied migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)
		_, database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		return migrations.RollbackLast(ctx, database.DB)
	},
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
