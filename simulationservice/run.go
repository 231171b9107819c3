// Package simulationservice wires configuration, storage, generation and the
// HTTP server into a runnable service.
package simulationservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/lifefork/lifefork-server/internal/api"
	"github.com/lifefork/lifefork-server/internal/config"
	"github.com/lifefork/lifefork-server/internal/factory"
	"github.com/lifefork/lifefork-server/internal/health"
	"github.com/lifefork/lifefork-server/internal/logger"
	"github.com/lifefork/lifefork-server/internal/services"
)

// Run starts the simulation service HTTP server and blocks until shutdown or
// error.
func Run() error {
	log := logger.New("simulation-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := factory.NewStore(ctx, cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return err
	}

	live, demo, err := factory.NewGenerators(ctx, cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Generator unavailable")
		return err
	}

	svc := services.NewSimulationService(st, live, demo)

	// Store health probing; every backend implements health.Pinger.
	var healthProbe func() bool
	if pinger, ok := st.(health.Pinger); ok {
		checker := health.NewChecker("store", pinger, log,
			time.Duration(cfg.HealthProbeTimeoutSeconds)*time.Second)
		go checker.Start(ctx, time.Duration(cfg.HealthIntervalSeconds)*time.Second)
		healthProbe = checker.IsHealthy
	}

	router := api.NewRouter(
		api.NewSimulationHandler(svc),
		api.NewHealthHandler(healthProbe),
		log,
	)

	server := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		// Live generation calls run inside the request; the write timeout
		// must exceed the generation timeout or responses get cut off.
		WriteTimeout: time.Duration(cfg.GenerateTimeoutSeconds+15) * time.Second,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}
