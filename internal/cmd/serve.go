package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/domainscout/domainscout/internal/core/store"
	"github.com/domainscout/domainscout/internal/observability"
	"github.com/domainscout/domainscout/internal/server"
	"github.com/domainscout/domainscout/internal/server/handlers"
)

// storeHealthChecker pings the database behind the signal cache.
type storeHealthChecker struct {
	store *store.Store
}

func (c storeHealthChecker) CheckHealth(ctx context.Context) error {
	if c.store == nil || c.store.DB == nil {
		return errors.New("store not available")
	}
	return c.store.DB.PingContext(ctx)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP assessment server with graceful shutdown support.

SIGINT or SIGTERM triggers a graceful shutdown: in-flight assessments
finish within the shutdown timeout and logs are flushed.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "host to bind")
	serveCmd.Flags().Int("port", 0, "port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}

	logger := observability.NewServerLogger("domainscout", cfg.Logging.Level)
	defer func() {
		// nolint:errcheck // stderr sync failures are unactionable
		logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := openStore(ctx, cfg, logger)
	if st != nil {
		defer st.Close() // nolint:errcheck // best-effort cleanup on store
	}

	orchestrator := buildOrchestrator(cfg, st, logger)
	// HTTP clients want quick answers, not courtesy pacing.
	orchestrator.DomainDelay = time.Millisecond
	orchestrator.NameDelay = time.Millisecond

	checkers := map[string]handlers.HealthChecker{}
	if st != nil {
		checkers["store"] = storeHealthChecker{store: st}
	}

	srv := server.New(cfg.Server, server.Deps{
		Engine: orchestrator,
		Version: handlers.VersionResponse{
			Version:   versionInfo.Version,
			Commit:    versionInfo.Commit,
			BuildDate: versionInfo.BuildDate,
		},
		Checkers: checkers,
		Logger:   logger,
	})

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown did not complete cleanly", zap.Error(err))
		return err
	}
	return nil
}
