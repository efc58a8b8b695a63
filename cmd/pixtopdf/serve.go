package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/youruser/pixtopdf/internal/api"
	"github.com/youruser/pixtopdf/internal/deliver"
	"github.com/youruser/pixtopdf/internal/pipeline"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload form and the document API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), a, port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PORT, then config server.port)")
	return cmd
}

func resolvePort(flag, env, configured string) string {
	if flag != "" {
		return flag
	}
	if env != "" {
		return env
	}
	if configured != "" {
		return configured
	}
	return "8080"
}

func runServe(ctx context.Context, a *app, portFlag string) error {
	mode, err := deliver.ParseMode(a.cfg.Delivery.Mode)
	if err != nil {
		return err
	}
	logger := log.Default()
	h := &api.Handler{
		Options:        pipeline.OptionsFromConfig(a.cfg, logger),
		Mode:           mode,
		MaxUploadBytes: a.cfg.Server.MaxUploadMB << 20,
		Logger:         logger,
	}

	r := gin.Default()
	api.RegisterRoutes(r, h)

	port := resolvePort(portFlag, os.Getenv("PORT"), a.cfg.Server.Port)
	srv := &http.Server{Addr: ":" + port, Handler: r}

	errCh := make(chan error, 1)
	go func() {
		log.Println("starting server on http://localhost:" + port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Println("shutting down")
	return srv.Shutdown(shutdownCtx)
}
