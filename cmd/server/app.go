package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/emphasis-trainer/internal/catalog"
	"github.com/phrazzld/emphasis-trainer/internal/config"
	"github.com/phrazzld/emphasis-trainer/internal/events"
	"github.com/phrazzld/emphasis-trainer/internal/service/stats"
	"github.com/phrazzld/emphasis-trainer/internal/service/trainer"
	"github.com/phrazzld/emphasis-trainer/internal/wordbase"
)

// application holds the shared dependencies of the server and releases them
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	parsed  wordbase.Result
	catalog *catalog.Catalog
	stats   *stats.Statistics
	trainer *trainer.Trainer
	emitter *events.InMemoryEventEmitter

	closeStore func() error
}

// newApplication loads the word database, opens statistics storage and
// wires the trainer.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	parsed, err := loadWordbase(cfg.Wordbase.Path, logger)
	if err != nil {
		return nil, err
	}
	app.parsed = parsed
	app.catalog = catalog.New(parsed.Words)

	kv, closeStore, err := openStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}
	app.closeStore = closeStore

	policy, err := stats.ParseFaultPolicy(cfg.Stats.FaultPolicy)
	if err != nil {
		app.cleanup()
		return nil, err
	}

	app.emitter = events.NewInMemoryEventEmitter(logger)
	app.emitter.RegisterHandler(events.NewLogHandler(logger))

	app.stats, err = stats.New(ctx, app.catalog.Hashes(), kv,
		stats.WithKey(cfg.Storage.Key),
		stats.WithFaultPolicy(policy),
		stats.WithLogger(logger),
		stats.WithEmitter(app.emitter))
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}

	app.trainer = trainer.New(app.catalog, app.stats, trainer.WithLogger(logger))

	logger.Info("application initialized",
		slog.Int("words", app.catalog.Len()),
		slog.Int("tracked", app.stats.Len()),
		slog.Int("due", app.stats.Due()))
	return app, nil
}

// Run serves HTTP until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases storage. It is safe to call more than once.
func (app *application) cleanup() {
	if app.closeStore != nil {
		if err := app.closeStore(); err != nil {
			app.logger.Error("error closing statistics storage", slog.String("error", err.Error()))
		}
		app.closeStore = nil
	}
	app.logger.Info("application shutdown completed")
}
