// Package server wires the storefront application together: configuration,
// logging, the Postgres-backed repositories, the domain services and the
// HTTP endpoint, plus graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/stitchline/storefront/internal/logging"
	"github.com/stitchline/storefront/internal/server/cart"
	"github.com/stitchline/storefront/internal/server/config"
	"github.com/stitchline/storefront/internal/server/httpapi"
	"github.com/stitchline/storefront/internal/server/products"
	"github.com/stitchline/storefront/internal/server/shared/db"
	"github.com/stitchline/storefront/internal/server/uploads"
	"github.com/stitchline/storefront/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
}

// NewApp builds the full dependency graph. A failed store connection is
// fatal: the service must not start serving without its database.
func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	manager, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	userService := users.NewService(manager.Users(), cfg)
	productService := products.NewService(manager.Products())
	cartService := cart.NewService(manager.Users())
	uploadService := uploads.NewService(cfg)

	server := httpapi.NewServer(cfg.EndpointAddr, logger,
		userService, productService, cartService, uploadService, cfg.SecretKey)

	return &App{config: cfg, logger: logger, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "starting storefront server", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
