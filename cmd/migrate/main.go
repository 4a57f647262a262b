package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"activator/config"
	logs "activator/internal/infra/log"
	"activator/internal/infra/persistence/migrate"
	"activator/migrations"

	"github.com/pkg/errors"
)

// Supported commands:
// - up:      Apply pending migrations
// - down:    Roll back the latest migration, or down to -target
// - status:  Print applied and pending migrations
// - version: Print the current schema version

func main() {
	command := flag.String("command", "up", "migrate command (up|down|status|version)")
	timeout := flag.Duration("timeout", 2*time.Minute, "command timeout")
	target := flag.Int64("target", 0, "target version for the down command (optional)")
	dsn := flag.String("dsn", "", "database URL, overrides migrations.dsn")
	flag.Parse()

	if err := run(*command, *dsn, *target, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %+v\n", err)
		os.Exit(1)
	}
}

func run(command, dsn string, target int64, timeout time.Duration) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	if dsn == "" && cfg.Migrations != nil {
		dsn = cfg.Migrations.DSN
	}

	runner, err := migrate.New(dsn, migrations.FS, logger)
	if err != nil {
		return errors.Wrap(err, "failed to configure migration runner")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	switch command {
	case "up":
		return runner.Up(ctx)
	case "down":
		return runner.Down(ctx, target)
	case "status":
		return runner.Status(ctx)
	case "version":
		version, err := runner.Version(ctx)
		if err != nil {
			return err
		}
		logger.Info("Schema version", slog.Int64("version", version))

		return nil
	default:
		return errors.Errorf("unsupported command %q", command)
	}
}
