package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/doc_generator/internal/artifacts"
	"github.com/kurochkinivan/doc_generator/internal/catalog"
	"github.com/kurochkinivan/doc_generator/internal/config"
	v1 "github.com/kurochkinivan/doc_generator/internal/controller/http/v1"
	"github.com/kurochkinivan/doc_generator/internal/converter"
	"github.com/kurochkinivan/doc_generator/internal/domain"
	"github.com/kurochkinivan/doc_generator/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/doc_generator/internal/pipeline"
	"github.com/kurochkinivan/doc_generator/internal/progress"
	"github.com/kurochkinivan/doc_generator/internal/render"
	"github.com/kurochkinivan/doc_generator/internal/repository/postgresql"
	"github.com/kurochkinivan/doc_generator/internal/repository/sqlite"
	"github.com/kurochkinivan/doc_generator/internal/spreadsheet"
	"golang.org/x/sync/errgroup"
)

const (
	eventsBuffer      = 64
	errorReportPrefix = "/api/v1/error-report/"
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

// storage is the row status persistence selected by the storage driver.
type storage struct {
	uploads interface {
		pipeline.UploadTracker
		ResetProcessingUploads(ctx context.Context) (int64, error)
	}
	rows interface {
		pipeline.StatusSink
		v1.RowStatusReader
	}
	tx    pipeline.Transactor
	close func()
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("output_dir", a.cfg.Generation.OutputDirectory),
		slog.String("templates_catalog", a.cfg.Generation.TemplatesCatalog),
		slog.String("converter", a.cfg.Converter.Command),
		slog.String("storage_driver", a.cfg.Storage.Driver),
	)

	store, err := a.openStorage(ctx)
	if err != nil {
		return err
	}
	defer store.close()

	reset, err := store.uploads.ResetProcessingUploads(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset processing uploads: %w", err)
	}
	if reset > 0 {
		a.log.InfoContext(ctx, "uploads interrupted by previous run marked failed", slog.Int64("count", reset))
	}

	return a.startPipeline(ctx, store)
}

func (a *App) openStorage(ctx context.Context) (*storage, error) {
	switch a.cfg.Storage.Driver {
	case config.StorageDriverSQLite:
		a.log.InfoContext(ctx, "opening sqlite database", slog.String("path", a.cfg.SQLite.Path))

		db, err := sqlite.NewConnection(ctx, a.cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}

		return &storage{
			uploads: sqlite.NewUploadsRepository(db),
			rows:    sqlite.NewRowStatusesRepository(db),
			tx:      sqlite.NewTxManager(db),
			close:   func() { db.Close() },
		}, nil

	default:
		a.log.InfoContext(ctx, "establishing postgresql connection",
			slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
			slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
			slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
		)

		pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
		if err != nil {
			return nil, fmt.Errorf("failed to create db connection: %w", err)
		}

		return &storage{
			uploads: postgresql.NewUploadsRepository(pool),
			rows:    postgresql.NewRowStatusesRepository(pool),
			tx:      postgresql.NewTxManager(pool),
			close:   pool.Close,
		}, nil
	}
}

func (a *App) startPipeline(ctx context.Context, store *storage) error {
	gen := a.cfg.Generation
	columns := domain.Columns{
		EmployeeNumber: gen.Columns.EmployeeNumber,
		FirstName:      gen.Columns.FirstName,
		LastName:       gen.Columns.LastName,
		Template:       gen.Columns.Template,
		Recipient:      gen.Columns.Recipient,
		PDFPassword:    gen.Columns.PDFPassword,
		Reason:         gen.Columns.Reason,
	}

	files := artifacts.NewStore(gen.OutputDirectory, gen.ScratchDirectory)
	if err := files.Init(); err != nil {
		return fmt.Errorf("failed to prepare output directories: %w", err)
	}

	hub := progress.NewHub(a.log, eventsBuffer)

	orchestrator := pipeline.NewOrchestrator(a.log, pipeline.Settings{
		Columns:   columns,
		Retention: a.cfg.App.JobRetention,
	}, pipeline.Dependencies{
		Reader:    spreadsheet.NewReader(a.log, columns),
		Templates: catalog.New(a.log, gen.TemplatesCatalog),
		Renderer:  render.NewEngine(a.log),
		Converter: converter.New(a.log, converter.Options{
			Command:     a.cfg.Converter.Command,
			Args:        a.cfg.Converter.Args,
			GracePeriod: a.cfg.Converter.GracePeriod,
		}),
		Protector:  converter.NewProtector(),
		Statuses:   store.rows,
		Uploads:    store.uploads,
		Transactor: store.tx,
		Publisher:  hub,
		Reports:    spreadsheet.NewReportWriter(files.Dir(artifacts.KindErrorReport), errorReportPrefix),
		Summaries:  report_generator.New(),
		Artifacts:  files,
	})

	server := v1.NewServer(a.log, a.cfg.HTTP, v1.Dependencies{
		Jobs:  orchestrator,
		Store: files,
		Rows:  store.rows,
		Hub:   hub,
	})

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "orchestrator started")
		return orchestrator.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
