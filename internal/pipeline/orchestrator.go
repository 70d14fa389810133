package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/doc_generator/internal/domain"
)

const (
	defaultRetention = time.Hour
	cleanupTimeout   = 30 * time.Second
)

type Settings struct {
	Columns   domain.Columns
	Retention time.Duration
}

type Dependencies struct {
	Reader        SourceReader
	Templates     TemplateResolver
	Renderer      Renderer
	Converter     Converter
	Protector     Protector
	Statuses      StatusSink
	Uploads       UploadTracker
	Transactor    Transactor
	Publisher     Publisher
	Reports       ReportWriter
	Summaries     SummaryGenerator
	Artifacts     ArtifactStore
	Cancellations *CancellationSet
}

// Orchestrator owns every job of the process. Jobs run concurrently, rows
// within a job run strictly one after another.
type Orchestrator struct {
	log      *slog.Logger
	settings Settings
	deps     Dependencies

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup

	mu   sync.RWMutex
	jobs map[string]*job
}

func NewOrchestrator(log *slog.Logger, settings Settings, deps Dependencies) *Orchestrator {
	if settings.Retention <= 0 {
		settings.Retention = defaultRetention
	}
	if deps.Cancellations == nil {
		deps.Cancellations = NewCancellationSet()
	}

	ctx, stop := context.WithCancel(context.Background())

	return &Orchestrator{
		log:      log,
		settings: settings,
		deps:     deps,
		ctx:      ctx,
		stop:     stop,
		jobs:     make(map[string]*job),
	}
}

// Run evicts expired jobs until ctx is done, then stops every running job
// and waits for it.
func (o *Orchestrator) Run(ctx context.Context) error {
	ticker := time.NewTicker(o.evictInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := o.evict(time.Now()); n > 0 {
				o.log.DebugContext(ctx, "evicted expired jobs", slog.Int("count", n))
			}

		case <-ctx.Done():
			o.log.InfoContext(ctx, "stopping running jobs")
			o.stop()
			o.wg.Wait()
			return ctx.Err()
		}
	}
}

func (o *Orchestrator) evictInterval() time.Duration {
	return max(min(o.settings.Retention/2, time.Minute), time.Millisecond)
}

func (o *Orchestrator) evict(now time.Time) int {
	o.mu.Lock()
	defer o.mu.Unlock()

	var evicted int
	for id, j := range o.jobs {
		if j.expired(now, o.settings.Retention) {
			delete(o.jobs, id)
			evicted++
		}
	}

	return evicted
}

// Submit parses the source and starts its row loop. It returns the job id
// before any row is processed.
func (o *Orchestrator) Submit(ctx context.Context, r io.Reader, filename, secret string) (string, error) {
	if err := o.ctx.Err(); err != nil {
		return "", fmt.Errorf("orchestrator is stopped: %w", err)
	}

	source, err := o.deps.Reader.Open(r, filename, secret)
	if err != nil {
		return "", err
	}

	for _, column := range o.requiredColumns() {
		if !source.HasColumn(column) {
			return "", fmt.Errorf("%w: %q", domain.ErrMissingRequiredColumn, column)
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate job id: %w", err)
	}

	jobCtx, cancel := context.WithCancel(o.ctx)
	log := o.log.With(slog.String("job_id", id.String()))
	j := newJob(id.String(), log, source, secret, cancel)

	o.mu.Lock()
	o.jobs[j.id] = j
	o.mu.Unlock()

	log.InfoContext(ctx, "job accepted",
		slog.String("filename", filename),
		slog.Int("rows", len(source.Rows)),
	)

	o.wg.Add(1)
	go o.process(jobCtx, j)

	return j.id, nil
}

func (o *Orchestrator) requiredColumns() []string {
	var columns []string
	for _, c := range []string{o.settings.Columns.EmployeeNumber, o.settings.Columns.Template, o.settings.Columns.Recipient} {
		if c != "" {
			columns = append(columns, c)
		}
	}
	return columns
}

func (o *Orchestrator) Status(id string) (domain.JobView, error) {
	j, err := o.job(id)
	if err != nil {
		return domain.JobView{}, err
	}

	return j.view(o.settings.Columns), nil
}

// Cancel marks a processing job for cancellation and returns before the
// cleanup finishes.
func (o *Orchestrator) Cancel(ctx context.Context, id string) error {
	j, err := o.job(id)
	if err != nil {
		return err
	}

	if err := j.transition(domain.JobStatusCancelling); err != nil {
		return err
	}

	o.deps.Cancellations.Add(j.id)
	j.cancel()

	j.log.InfoContext(ctx, "job cancellation requested")

	o.wg.Add(1)
	go o.cleanup(j)

	return nil
}

func (o *Orchestrator) job(id string) (*job, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	j, ok := o.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %q: %w", id, domain.ErrNotFound)
	}

	return j, nil
}

func (o *Orchestrator) cancelled(ctx context.Context, id string) bool {
	return o.deps.Cancellations.Contains(id) || ctx.Err() != nil
}

// cleanup waits for the row loop, removes everything the job produced and
// always ends in CANCELLED. Cleanup errors become the job's warning.
func (o *Orchestrator) cleanup(j *job) {
	defer o.wg.Done()

	<-j.done

	ctx, cancel := context.WithTimeout(context.WithoutCancel(o.ctx), cleanupTimeout)
	defer cancel()

	var errs []error

	if err := removeFiles(j.trackedFiles()...); err != nil {
		errs = append(errs, err)
	}

	removed, err := o.deps.Artifacts.RemoveJobFiles(j.id)
	if err != nil {
		errs = append(errs, err)
	}

	j.clearOutputs()

	err = o.deps.Transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := o.deps.Uploads.CancelRows(ctx, j.id); err != nil {
			return fmt.Errorf("failed to cancel rows: %w", err)
		}

		if err := o.deps.Uploads.FinishUpload(ctx, j.id, domain.JobStatusCancelled); err != nil {
			return fmt.Errorf("failed to finish upload: %w", err)
		}

		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		j.log.WarnContext(ctx, "job cleanup finished with errors", slog.String("err", err.Error()))
		j.addWarning(err.Error())
	}

	if err := j.transition(domain.JobStatusCancelled); err != nil {
		j.log.ErrorContext(ctx, "failed to mark job cancelled", slog.String("err", err.Error()))
	}

	o.deps.Cancellations.Remove(j.id)

	j.log.InfoContext(ctx, "job cancelled", slog.Int("removed_files", len(removed)))

	o.deps.Publisher.Publish(ctx, j.id, domain.Event{
		Type:     domain.EventCompleted,
		Status:   domain.JobStatusCancelled,
		Counters: ptr(j.Counters()),
		Message:  domain.ErrCancelled.Error(),
	})
}

func ptr[T any](v T) *T {
	return &v
}
