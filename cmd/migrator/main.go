package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kurochkinivan/doc_generator/internal/config"
	"github.com/kurochkinivan/doc_generator/internal/repository/postgresql"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	commandUp      = "up"
	commandDown    = "down"
	commandVersion = "version"
)

const (
	exitCodeOK = iota
	exitCodeInputErr
	exitCodeInternalErr
)

type flags struct {
	command  string
	postgres config.PostgreSQL
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	exitCode, err := Run(ctx, log, os.Args[1:])
	if err != nil {
		log.ErrorContext(ctx, "migrator failed", slog.String("err", err.Error()))
	}

	stop()
	os.Exit(exitCode)
}

// Run applies the embedded upload and row status migrations to the
// PostgreSQL status sink. The SQLite sink creates its schema on open and
// needs no migrator.
func Run(ctx context.Context, log *slog.Logger, args []string) (exitCode int, err error) {
	f, err := parseFlags(args)
	if err != nil {
		return exitCodeInputErr, fmt.Errorf("invalid flags: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return exitCodeInternalErr, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, postgresql.ConnString(f.postgres))
	if err != nil {
		return exitCodeInternalErr, fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		if closeErr := errors.Join(srcErr, dbErr); closeErr != nil {
			if err == nil {
				exitCode = exitCodeInternalErr
			}
			err = errors.Join(err, closeErr)
		}
	}()

	go func() {
		<-ctx.Done()
		migrator.GracefulStop <- true
	}()

	log = log.With(slog.String("command", f.command), slog.String("db", f.postgres.DBName))

	if f.command == commandVersion {
		version, dirty, err := migrator.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.InfoContext(ctx, "no migrations applied")
			return exitCodeOK, nil
		}
		if err != nil {
			return exitCodeInternalErr, fmt.Errorf("failed to read schema version: %w", err)
		}

		log.InfoContext(ctx, "schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
		return exitCodeOK, nil
	}

	if err := apply(migrator, f.command); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.InfoContext(ctx, "schema is up to date")
			return exitCodeOK, nil
		}

		return exitCodeInternalErr, fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.InfoContext(ctx, "migrations applied")

	return exitCodeOK, nil
}

func apply(migrator *migrate.Migrate, command string) error {
	switch command {
	case commandUp:
		return migrator.Up()
	case commandDown:
		return migrator.Down()
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{}

	fs := flag.NewFlagSet("migrator", flag.ContinueOnError)
	fs.StringVar(&f.command, "type", commandUp, "command: up, down or version")
	fs.StringVar(&f.postgres.Username, "username", "", "database username")
	fs.StringVar(&f.postgres.Password, "password", "", "database password")
	fs.StringVar(&f.postgres.Host, "host", "127.0.0.1", "database host")
	fs.StringVar(&f.postgres.Port, "port", "5432", "database port")
	fs.StringVar(&f.postgres.DBName, "db", "doc_generator", "database name")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, f.validate()
}

func (f *flags) validate() error {
	switch f.command {
	case commandUp, commandDown, commandVersion:
	default:
		return fmt.Errorf("type must be one of %q, %q or %q, got %q", commandUp, commandDown, commandVersion, f.command)
	}

	for _, req := range []struct{ name, value string }{
		{"username", f.postgres.Username},
		{"password", f.postgres.Password},
		{"db", f.postgres.DBName},
		{"port", f.postgres.Port},
	} {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}

	return nil
}
