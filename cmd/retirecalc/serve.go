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

	"github.com/goldira/retirecalc/internal/api"
	"github.com/goldira/retirecalc/internal/config"
)

var (
	serveAddr    string
	serveOrigins []string
	serveConfig  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler := api.NewHandler(newEngine(), logger).WithVersion(version)
		if serveConfig != "" {
			cfg, err := config.NewInputParser().LoadFromFile(serveConfig)
			if err != nil {
				return err
			}
			handler.WithAssumptions(cfg.Assumptions)
		}

		server := &http.Server{
			Addr:              serveAddr,
			Handler:           api.NewRouter(handler, serveOrigins),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", zap.String("addr", serveAddr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "cors-origin", []string{"*"}, "Allowed CORS origins")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Configuration file whose assumptions apply to every request")

	rootCmd.AddCommand(serveCmd)
}
