package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/dmitrijs2005/gophtickets/internal/client/client"
	"github.com/dmitrijs2005/gophtickets/internal/client/config"
	"github.com/dmitrijs2005/gophtickets/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophtickets/internal/client/services"
	"github.com/dmitrijs2005/gophtickets/internal/common"
	"github.com/dmitrijs2005/gophtickets/internal/filex"
	"github.com/dmitrijs2005/gophtickets/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	authService        services.AuthService
	eventService       services.EventService
	checkoutService    services.CheckoutService
	reservationService services.ReservationService

	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB

	// expired is raised by the API client after a forced logout and
	// consumed by the REPL before the next prompt.
	expired atomic.Bool
}

// NewApp opens the credential store named in c and builds the API client and
// services on top of it. With c.SealTokens the user is asked for the store
// passphrase first.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, c.LogLevel)

	if _, err := filex.EnsureParentDir(c.StorePath); err != nil {
		return nil, fmt.Errorf("prepare credential store: %w", err)
	}

	repo, db, err := credentials.OpenSQLite(ctx, c.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing credential store", "path", c.StorePath, "error", err)
		return nil, err
	}

	var store credentials.Repository = repo
	if c.SealTokens {
		passphrase, err := getPassword(os.Stdout, "Enter store passphrase: ")
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("read passphrase: %w", err)
		}
		store = credentials.NewSealedRepository(repo, passphrase, log)
		common.WipeByteArray(passphrase)
	}

	a := &App{
		config: c,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		db:     db,
	}

	apiClient, err := client.New(c.ServerURL, store,
		client.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout}),
		client.WithLogger(log),
		client.WithRefreshCoalescing(c.CoalesceRefresh),
		client.WithOnUnauthenticated(a.onUnauthenticated),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a.attach(apiClient, store)
	return a, nil
}

// attach builds the services over c and store.
func (a *App) attach(c client.Client, store credentials.Repository) {
	a.authService = services.NewAuthService(c, store)
	a.eventService = services.NewEventService(c)
	a.checkoutService = services.NewCheckoutService(c)
	a.reservationService = services.NewReservationService(c)
}

func (a *App) onUnauthenticated(ctx context.Context) {
	a.expired.Store(true)
}

// takeExpired reports and resets the forced-logout flag.
func (a *App) takeExpired() bool {
	return a.expired.Swap(false)
}

// initSignalHandler cancels ctx on the first interrupt, aborting any request
// in flight. Later signals get the default behaviour, so a second Ctrl-C
// leaves a REPL that is blocked on input.
func (a *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		signal.Stop(sigs)
		cancelFunc()
	}()
}

func (a *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer a.Close()

	a.initSignalHandler(cancelFunc)
	a.Root(ctx)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	s, err := a.authService.Session(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to read session", "error", err)
		return false
	}
	return s.LoggedIn
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	_, _ = fmt.Fprintln(a.out, args...)
}
