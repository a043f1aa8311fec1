package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"assetledger/handlers"
	"assetledger/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.log.Sync()

		middleware.SetJWTSecret(a.cfg.JWTSecret)

		srv := &http.Server{
			Addr:         ":" + a.cfg.ServerPort,
			Handler:      handlers.NewRouter(a.cfg, a.store, a.mode, a.log),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			a.log.Info("server starting",
				zap.String("addr", srv.Addr),
				zap.String("attribution_mode", string(a.mode)),
			)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-quit:
			a.log.Info("shutting down server", zap.String("signal", sig.String()))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			a.log.Error("server forced shutdown", zap.Error(err))
			return err
		}

		a.log.Info("server stopped")
		return nil
	},
}
