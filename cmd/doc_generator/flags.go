package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/doc_generator/internal/app"
	cfg "github.com/kurochkinivan/doc_generator/internal/config"
	"github.com/kurochkinivan/doc_generator/internal/domain"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "doc_generator",
		Usage:   "Batch document generation service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			return app.New(log, cfg.Load(cmd)).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.DurationFlag{
			Name:    "job-retention",
			Usage:   "Set how long finished jobs stay queryable",
			Value:   time.Hour,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.job_retention", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "output-dir",
			Aliases:  []string{"o"},
			Usage:    "Set directory to write generated documents and reports to",
			Value:    "generated",
			Sources:  cli.NewValueSourceChain(yaml.YAML("generation.output_dir", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "scratch-dir",
			Usage:   "Set directory for intermediate rendered documents",
			Value:   filepath.Join(os.TempDir(), "doc_generator"),
			Sources: cli.NewValueSourceChain(yaml.YAML("generation.scratch_dir", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:      "templates-catalog",
			Aliases:   []string{"t"},
			Usage:     "Set path to the tab separated templates catalog",
			Value:     "templates/catalog.tsv",
			Sources:   cli.NewValueSourceChain(yaml.YAML("generation.templates_catalog", altsrc.NewStringPtrSourcer(&config))),
			Required:  true,
			Validator: validateFile,
		},
		&cli.StringFlag{
			Name:    "column-employee-number",
			Usage:   "Set employee number column header",
			Value:   "Employee_Number",
			Sources: cli.NewValueSourceChain(yaml.YAML("generation.columns.employee_number", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "column-first-name",
			Usage:   "Set first name column header",
			Value:   "First_Name",
			Sources: cli.NewValueSourceChain(yaml.YAML("generation.columns.first_name", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "column-last-name",
			Usage:   "Set last name column header",
			Value:   "Last_Name",
			Sources: cli.NewValueSourceChain(yaml.YAML("generation.columns.last_name", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "column-template",
			Usage:   "Set template name column header",
			Value:   "Template_Name",
			Sources: cli.NewValueSourceChain(yaml.YAML("generation.columns.template", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "column-recipient",
			Usage:   "Set recipient email column header",
			Value:   "Email",
			Sources: cli.NewValueSourceChain(yaml.YAML("generation.columns.recipient", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "column-pdf-password",
			Usage:   "Set column header holding per-row PDF passwords, empty disables protection",
			Sources: cli.NewValueSourceChain(yaml.YAML("generation.columns.pdf_password", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "column-reason",
			Usage:   "Set error report reason column header",
			Value:   domain.DefaultReasonColumn,
			Sources: cli.NewValueSourceChain(yaml.YAML("generation.columns.reason", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "converter-command",
			Usage:   "Set PDF conversion executable",
			Value:   "soffice",
			Sources: cli.NewValueSourceChain(yaml.YAML("converter.command", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringSliceFlag{
			Name:  "converter-args",
			Usage: "Set extra arguments passed to the conversion executable",
		},
		&cli.DurationFlag{
			Name:    "converter-grace-period",
			Usage:   "Set how long a cancelled conversion may take to exit before it is killed",
			Value:   5 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("converter.grace_period", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:      "storage-driver",
			Usage:     "Set row status storage: postgres or sqlite",
			Value:     cfg.StorageDriverPostgres,
			Sources:   cli.NewValueSourceChain(yaml.YAML("storage.driver", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateStorageDriver,
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "doc_generator",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "sqlite-path",
			Usage:   "Set SQLite database file",
			Value:   "data/doc_generator.db",
			Sources: cli.NewValueSourceChain(yaml.YAML("sqlite.path", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.Int64Flag{
			Name:    "http-max-upload-bytes",
			Usage:   "Set maximum accepted upload size",
			Value:   32 << 20,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.max_upload_bytes", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateStorageDriver(driver string) error {
	switch driver {
	case cfg.StorageDriverPostgres, cfg.StorageDriverSQLite:
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", driver)
	}
}

func validateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", path)
		}
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", path)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
