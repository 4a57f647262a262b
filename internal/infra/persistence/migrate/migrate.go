// Package migrate applies the embedded schema migrations with goose.
package migrate

import (
	"context"
	"database/sql"
	"io/fs"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

const (
	dialect          = "postgres"
	migrationTimeout = time.Minute
	pingTimeout      = 5 * time.Second
)

// Runner applies versioned migrations against a PostgreSQL database.
type Runner struct {
	dsn        string
	migrations fs.FS
	log        *slog.Logger
}

// New returns a migration runner reading migrations from the root of fsys.
func New(dsn string, fsys fs.FS, log *slog.Logger) (*Runner, error) {
	if dsn == "" {
		return nil, errors.New("empty database dsn")
	}
	if fsys == nil {
		return nil, errors.New("nil migrations filesystem")
	}
	if log == nil {
		log = slog.Default()
	}

	return &Runner{dsn: dsn, migrations: fsys, log: log}, nil
}

// Up applies pending migrations.
func (r *Runner) Up(ctx context.Context) error {
	return r.withDB(ctx, func(runCtx context.Context, db *sql.DB) error {
		r.log.Info("Applying migrations")
		if err := goose.UpContext(runCtx, db, "."); err != nil {
			return errors.Wrap(err, "failed to apply migrations")
		}
		r.log.Info("Migrations applied")

		return nil
	})
}

// Down rolls back to targetVersion, or the latest migration when targetVersion is zero.
func (r *Runner) Down(ctx context.Context, targetVersion int64) error {
	return r.withDB(ctx, func(runCtx context.Context, db *sql.DB) error {
		if targetVersion > 0 {
			r.log.Info("Rolling back migrations", slog.Int64("target", targetVersion))
			if err := goose.DownToContext(runCtx, db, ".", targetVersion); err != nil {
				return errors.Wrapf(err, "failed to roll back to version %d", targetVersion)
			}

			return nil
		}

		r.log.Info("Rolling back latest migration")
		if err := goose.DownContext(runCtx, db, "."); err != nil {
			return errors.Wrap(err, "failed to roll back latest migration")
		}

		return nil
	})
}

// Status logs applied and pending migrations.
func (r *Runner) Status(ctx context.Context) error {
	return r.withDB(ctx, func(runCtx context.Context, db *sql.DB) error {
		if err := goose.StatusContext(runCtx, db, "."); err != nil {
			return errors.Wrap(err, "failed to read migration status")
		}

		return nil
	})
}

// Version returns the current schema version.
func (r *Runner) Version(ctx context.Context) (int64, error) {
	var version int64
	err := r.withDB(ctx, func(runCtx context.Context, db *sql.DB) error {
		current, err := goose.GetDBVersionContext(runCtx, db)
		if err != nil {
			return errors.Wrap(err, "failed to read schema version")
		}
		version = current

		return nil
	})

	return version, err
}

func (r *Runner) withDB(ctx context.Context, fn func(context.Context, *sql.DB) error) error {
	goose.SetBaseFS(r.migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "failed to configure goose")
	}

	db, err := sql.Open("pgx", r.dsn)
	if err != nil {
		return errors.Wrap(err, "failed to open sql connection")
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(ctx, pingTimeout)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}

	runCtx, cancel := context.WithTimeout(ctx, migrationTimeout)
	defer cancel()

	return fn(runCtx, db)
}
