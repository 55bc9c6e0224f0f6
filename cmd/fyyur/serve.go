package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fyyur/internal/config"
	"fyyur/internal/db/migrations"
	"fyyur/internal/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	cfg, database, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migrations.RunMigrations(ctx, database.DB); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	s3Config, err := config.NewS3Config(ctx, cfg.S3)
	if err != nil {
		return fmt.Errorf("configure s3: %w", err)
	}
	if s3Config == nil {
		log.Println("S3_BUCKET_NAME not set, image uploads disabled")
	}

	router, err := routes.SetupRoutes(database.DB, cfg, s3Config)
	if err != nil {
		return fmt.Errorf("setup routes: %w", err)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-quit:
	}
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exiting")
	return nil
}
