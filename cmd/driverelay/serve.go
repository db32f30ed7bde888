package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sagarc03/driverelay"
	"github.com/sagarc03/driverelay/config"
	"github.com/sagarc03/driverelay/drive"
	relayhttp "github.com/sagarc03/driverelay/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP relay server",
	Long:  `Start the upload relay HTTP server.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 3000, "HTTP server port (env: PORT or RELAY_SERVER_PORT)")
	serveCmd.Flags().String("alt-header", "", "alternate auth header name (env: RELAY_AUTH_ALT_HEADER)")
	serveCmd.Flags().String("mime-type", "", "default upload content type (env: RELAY_UPLOAD_DEFAULT_MIME_TYPE)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	var configFiles []string
	if configFile != "" {
		configFiles = []string{configFile}
	}

	cfg, err := config.Load(configFiles, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	setupLogging(cfg.Log.Level)

	storage := drive.NewClient()
	service := driverelay.NewService(storage, cfg.Upload.DefaultMimeType)

	handlerConfig := relayhttp.HandlerConfig{
		AltAuthHeader: cfg.Auth.AltHeader,
		Version:       version,
		CORS:          cfg.CORS,
	}
	handler := relayhttp.NewHandler(&handlerConfig, service)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
	}()

	slog.Info("starting server",
		"addr", addr,
		"alt_header", cfg.Auth.AltHeader,
		"default_mime_type", cfg.Upload.DefaultMimeType,
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
