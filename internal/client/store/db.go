package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/ifti227i/RideShareX/internal/client/migrations"
	"github.com/ifti227i/RideShareX/internal/dbx"
	"github.com/ifti227i/RideShareX/internal/filex"
	"github.com/ifti227i/RideShareX/internal/logging"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Database owns the SQLite handle behind a TxStore.
type Database struct {
	db *sql.DB
	*SQLiteStore
}

var _ TxStore = (*Database)(nil)

// NewDatabase wraps an already migrated handle.
func NewDatabase(db *sql.DB) *Database {
	return &Database{db: db, SQLiteStore: NewSQLiteStore(db)}
}

// WithTx runs fn against a store bound to a single transaction.
func (d *Database) WithTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	return dbx.WithTx(ctx, d.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewSQLiteStore(tx))
	})
}

func (d *Database) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *Database) Close() error {
	return d.db.Close()
}

// gooseLogger routes goose output through our logger.
type gooseLogger struct {
	log logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug(context.Background(), fmt.Sprintf(format, v...))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(context.Background(), fmt.Sprintf(format, v...))
	os.Exit(1)
}

// goose keeps its configuration in package globals.
var gooseMu sync.Mutex

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations. It is safe to run on an
// already migrated database.
func RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the SQLite file at path and
// migrates it.
func InitDatabase(ctx context.Context, path string, log logging.Logger) (*Database, error) {
	abs, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Debug(ctx, "local store ready", "path", abs)
	return NewDatabase(db), nil
}
