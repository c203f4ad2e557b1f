package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-snap-sync/internal/adapter"
	"github.com/MKhiriev/go-snap-sync/internal/bus"
	"github.com/MKhiriev/go-snap-sync/internal/config"
	"github.com/MKhiriev/go-snap-sync/internal/logger"
	"github.com/MKhiriev/go-snap-sync/internal/service"
	"github.com/MKhiriev/go-snap-sync/internal/store"
	"github.com/MKhiriev/go-snap-sync/internal/workers"
)

// App is the headless sync agent. It owns the local database, the remote
// adapter, and the reconciler, and keeps them in step until the process
// receives a stop signal.
type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	storages *store.ClientStorages
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	commandBus := bus.NewCommandBus()

	storages, err := store.NewClientStorages(cfg.Storage, cfg.Sync, commandBus, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	blobStore, err := adapter.NewHTTPBlobStore(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create blob store adapter: %w", err)
	}

	svcs := service.NewClientServices(storages, blobStore, commandBus, cfg, log)

	return &App{
		cfg:      cfg,
		services: svcs,
		storages: storages,
		logger:   log,
	}, nil
}

// Services exposes the agent's service layer, mainly for embedding callers
// that drive entry mutations themselves.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run implements [Client]. It fires one resume sync, starts the periodic
// job, then blocks until SIGINT/SIGTERM/SIGQUIT. On the way out it pauses
// sync (one final cycle) and waits for pending merges.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	a.services.Reconciler.OnResume(ctx)

	workers.NewWorkers(&syncJobWorker{
		app: a,
		ctx: ctx,
	}).Run()
	defer a.services.SyncJob.Stop()

	a.logger.Info().Msg("sync agent is running")
	<-ctx.Done()

	// One last push attempt with a fresh context: the signal context is
	// already cancelled.
	a.services.Reconciler.OnPause(context.Background())
	a.services.Importer.Wait()

	a.logger.Info().Msg("sync agent stopped gracefully")
	return nil
}

// syncJobWorker adapts the periodic sync job to the [workers.Worker]
// contract.
type syncJobWorker struct {
	app *App
	ctx context.Context
}

func (w *syncJobWorker) Run() {
	w.app.services.SyncJob.Start(w.ctx, w.app.cfg.Workers.SyncInterval)
}
