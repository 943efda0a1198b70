package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ifti227i/RideShareX/internal/client/client"
	"github.com/ifti227i/RideShareX/internal/client/config"
	"github.com/ifti227i/RideShareX/internal/client/directory"
	"github.com/ifti227i/RideShareX/internal/client/prefs"
	"github.com/ifti227i/RideShareX/internal/client/services"
	"github.com/ifti227i/RideShareX/internal/client/session"
	"github.com/ifti227i/RideShareX/internal/client/store"
	"github.com/ifti227i/RideShareX/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single probe of the online watcher.
const pingTimeout = 3 * time.Second

// Services bundles what the command handlers call into.
type Services struct {
	Auth    services.AuthService
	Profile services.ProfileService
	Rides   services.RideService
	Prefs   *prefs.Prefs
}

type App struct {
	config  *config.Config
	db      *store.Database
	auth    services.AuthService
	profile services.ProfileService
	rides   services.RideService
	prefs   *prefs.Prefs
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu       sync.RWMutex
	mode     Mode
	userName string
}

// New builds an App over already wired services. in and out carry the
// interactive session.
func New(cfg *config.Config, svc Services, in io.Reader, out io.Writer, log logging.Logger) *App {
	return &App{
		config:  cfg,
		auth:    svc.Auth,
		profile: svc.Profile,
		rides:   svc.Rides,
		prefs:   svc.Prefs,
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
		mode:    ModeOffline,
	}
}

// NewApp opens the local database and wires the client stack for the
// terminal.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.InitDatabase(ctx, cfg.DatabasePath, log)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	sess := session.New(db)
	dir := directory.New(db)
	if cfg.SeedDemoData {
		seeded, err := dir.SeedDefault(ctx)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("error seeding directory: %w", err)
		}
		if seeded {
			log.Info(ctx, "seeded demo user", "email", directory.DemoEmail)
		}
	}

	tokens := services.NewLocalTokens(db)
	apiClient := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, sess, log)

	svc := Services{
		Auth:    services.NewAuthService(apiClient, sess, dir, tokens, log),
		Profile: services.NewProfileService(apiClient, sess, tokens, cfg.ProfilePictureMaxBytes, log),
		Rides:   services.NewRideService(apiClient, sess, tokens, log),
		Prefs:   prefs.New(db, cfg.SeedDemoData),
	}

	a := New(cfg, svc, os.Stdin, os.Stdout, log)
	a.db = db
	return a, nil
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run restores a stored session, starts the online watcher and blocks in
// the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to RideShareX (type 'help' for commands)")

	a.restoreSession(ctx)
	a.checkOnline(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) restoreSession(ctx context.Context) {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return
	}
	a.setUser(u.Username)
	fmt.Fprintf(a.out, "Signed in as %s\n", u.Username)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Debug(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setUser(name string) {
	a.mu.Lock()
	a.userName = name
	a.mu.Unlock()
}

func (a *App) isLoggedIn() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.userName != ""
}

// sessionExpired drops the REPL to the logged-out state. The stored
// session is already gone by the time a handler reports the expiry.
func (a *App) sessionExpired(ctx context.Context) {
	a.setUser("")
	a.log.Info(ctx, "session expired, returning to login")
}

// getStatus renders the prompt status, e.g. "(demo_user online)".
func (a *App) getStatus() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.userName == "" {
		return fmt.Sprintf("(%s)", a.mode)
	}
	return fmt.Sprintf("(%s %s)", a.userName, a.mode)
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.auth.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher probes the API every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
