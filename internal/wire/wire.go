// Package wire provides dependency injection for ticketdesk.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"

	cliadapter "github.com/example/ticketdesk/internal/adapters/cli"
	"github.com/example/ticketdesk/internal/adapters/sqlite"
	"github.com/example/ticketdesk/internal/app"
	"github.com/example/ticketdesk/internal/config"
	"github.com/example/ticketdesk/internal/db"
	"github.com/example/ticketdesk/internal/logging"
	"github.com/example/ticketdesk/internal/ports/primary"
)

var (
	settings      *config.Config
	ticketService primary.TicketService
	database      *sql.DB
	logCloser     io.Closer
	initErr       error
	once          sync.Once
)

// Configure sets the configuration used when services are first built.
// Calls after the first service request have no effect.
func Configure(cfg *config.Config) {
	settings = cfg
}

// TicketService returns the singleton TicketService instance.
func TicketService() (primary.TicketService, error) {
	once.Do(initServices)
	return ticketService, initErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg := settings
	if cfg == nil {
		cfg = config.Default()
	}

	logger, closer := logging.NewWithFallback(cfg.Log, os.Stderr)
	logCloser = closer
	slog.SetDefault(logger)

	var err error
	database, err = db.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.Database.Path, "error", err)
		initErr = err
		return
	}

	// Create repository adapter (secondary port) with injected DB
	ticketRepo := sqlite.NewTicketRepository(database)

	// Create service (primary port implementation)
	service := app.NewTicketService(ticketRepo, logger)
	if err := service.EnsureSchema(context.Background()); err != nil {
		initErr = err
		return
	}
	ticketService = service
}

// TicketAdapter returns a new TicketAdapter writing to out and reading
// confirmations from in. Each call creates a new adapter.
func TicketAdapter(out io.Writer, in io.Reader, assumeYes bool) (*cliadapter.TicketAdapter, error) {
	service, err := TicketService()
	if err != nil {
		return nil, err
	}
	dialog := cliadapter.NewTerminalDialog(out, in, assumeYes)
	return cliadapter.NewTicketAdapter(service, dialog, out), nil
}

// Close releases the database connection and the log file.
func Close() error {
	var errs []error
	if database != nil {
		errs = append(errs, database.Close())
	}
	if logCloser != nil {
		errs = append(errs, logCloser.Close())
	}
	return errors.Join(errs...)
}
