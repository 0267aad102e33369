// Package app wires configuration, logging, the item store, the background
// syncer and the interactive shell, and handles graceful shutdown.
package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/filedesk/internal/cli"
	"github.com/dmitrijs2005/filedesk/internal/config"
	"github.com/dmitrijs2005/filedesk/internal/filex"
	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/dmitrijs2005/filedesk/internal/services"
	"github.com/dmitrijs2005/filedesk/internal/store"
	"github.com/dmitrijs2005/filedesk/internal/syncer"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *store.Store
	syncer *syncer.Syncer
	shell  *cli.App
}

// NewApp builds the application. Logs go to logOut; the shell reads in and
// writes to out.
func NewApp(c *config.Config, in io.Reader, out, logOut io.Writer, interactive bool) *App {
	logger := logging.New(c.LogLevel, logOut)

	st := store.New(c.DBPath, logger)
	sy := syncer.New(st, syncer.NewLogRemote(logger), c.SyncDebounce, logger)
	items := services.NewItemService(st, sy, logger)

	return &App{
		config: c,
		logger: logger,
		store:  st,
		syncer: sy,
		shell:  cli.NewApp(items, sy, in, out, interactive),
	}
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run blocks until the shell exits or a termination signal arrives. The
// store is closed on the way out.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(ctx, cancelFunc)
	app.logger.Info(ctx, "starting filedesk", "db", app.config.DBPath)

	// the store reports an unusable path itself
	if _, err := filex.EnsureParentDir(app.config.DBPath); err != nil {
		app.logger.Warn(ctx, "cannot create database directory", "error", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.syncer.Run(ctx)
	}()

	shellErr := make(chan error, 1)
	go func() {
		shellErr <- app.shell.Run(ctx)
	}()

	var err error
	select {
	case err = <-shellErr:
	case <-ctx.Done():
		app.logger.Info(ctx, "shutting down")
	}

	cancelFunc()
	wg.Wait()

	if closeErr := app.store.Close(); closeErr != nil {
		app.logger.Error(ctx, "error closing store", "error", closeErr)
	}
	return err
}
