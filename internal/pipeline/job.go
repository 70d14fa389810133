package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/kurochkinivan/doc_generator/internal/domain"
)

// job is mutated only by its row loop and its cancellation cleanup; both go
// through mu.
type job struct {
	id     string
	log    *slog.Logger
	source *domain.Source
	cancel context.CancelFunc
	done   chan struct{}

	mu          sync.Mutex
	secret      string
	status      domain.JobStatus
	counters    domain.Counters
	documents   []domain.DocumentArtifact
	failures    []domain.RowFailure
	errorReport *domain.ErrorReport
	summary     string
	warning     string
	tracked     []string
	baseNames   map[string]struct{}
	createdAt   time.Time
	updatedAt   time.Time
}

func newJob(id string, log *slog.Logger, source *domain.Source, secret string, cancel context.CancelFunc) *job {
	now := time.Now()

	return &job{
		id:        id,
		log:       log,
		source:    source,
		cancel:    cancel,
		done:      make(chan struct{}),
		secret:    secret,
		status:    domain.JobStatusProcessing,
		counters:  domain.Counters{Total: len(source.Rows)},
		baseNames: make(map[string]struct{}, len(source.Rows)),
		createdAt: now,
		updatedAt: now,
	}
}

func (j *job) transition(next domain.JobStatus) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.transitionLocked(next)
}

func (j *job) transitionLocked(next domain.JobStatus) error {
	if !j.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: job %s is %s", domain.ErrInvalidState, j.id, j.status)
	}

	j.status = next
	j.updatedAt = time.Now()

	if next.Terminal() {
		j.secret = ""
	}

	return nil
}

func (j *job) Status() domain.JobStatus {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.status
}

func (j *job) track(paths ...string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.tracked = append(j.tracked, paths...)
}

// reserveBaseName returns the output base name for row, unique within the
// job. Rows whose sanitized names collide get their position appended.
func (j *job) reserveBaseName(row domain.RowRecord) string {
	j.mu.Lock()
	defer j.mu.Unlock()

	name := row.BaseName
	for i := 0; ; i++ {
		if _, taken := j.baseNames[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s_%d", row.BaseName, row.Position)
		if i > 0 {
			name = fmt.Sprintf("%s_%d_%d", row.BaseName, row.Position, i)
		}
	}

	j.baseNames[name] = struct{}{}
	return name
}

func (j *job) trackedFiles() []string {
	j.mu.Lock()
	defer j.mu.Unlock()

	return slices.Clone(j.tracked)
}

func (j *job) succeed(artifact domain.DocumentArtifact) domain.Counters {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.documents = append(j.documents, artifact)
	j.counters.Processed++
	j.counters.Succeeded++
	j.updatedAt = time.Now()

	return j.counters
}

func (j *job) fail(failure domain.RowFailure) domain.Counters {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.failures = append(j.failures, failure)
	j.counters.Processed++
	j.counters.Failed++
	j.updatedAt = time.Now()

	return j.counters
}

func (j *job) Counters() domain.Counters {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.counters
}

func (j *job) failuresSnapshot() []domain.RowFailure {
	j.mu.Lock()
	defer j.mu.Unlock()

	return slices.Clone(j.failures)
}

func (j *job) Secret() string {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.secret
}

func (j *job) setErrorReport(report *domain.ErrorReport) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.errorReport = report
	if report != nil {
		j.tracked = append(j.tracked, report.Path)
	}
}

func (j *job) setSummary(name, path string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.summary = name
	j.tracked = append(j.tracked, path)
}

func (j *job) addWarning(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.warning != "" {
		j.warning += "; "
	}
	j.warning += msg
}

// clearOutputs forgets everything the job produced.
func (j *job) clearOutputs() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.documents = nil
	j.errorReport = nil
	j.summary = ""
	j.tracked = nil
}

func (j *job) expired(now time.Time, retention time.Duration) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.status.Terminal() && now.Sub(j.updatedAt) > retention
}

func (j *job) view(columns domain.Columns) domain.JobView {
	j.mu.Lock()
	defer j.mu.Unlock()

	view := domain.JobView{
		ID:            j.id,
		FileName:      j.source.FileName,
		Status:        j.status,
		Counters:      j.counters,
		Failures:      make([]domain.FailureView, 0, len(j.failures)),
		Documents:     slices.Clone(j.documents),
		SummaryReport: j.summary,
		Warning:       j.warning,
		CreatedAt:     j.createdAt,
		UpdatedAt:     j.updatedAt,
	}

	if j.status != domain.JobStatusCancelled && j.errorReport != nil {
		report := *j.errorReport
		view.ErrorReport = &report
	}

	for _, f := range j.failures {
		view.Failures = append(view.Failures, domain.FailureView{
			Position: f.Row.Position,
			Row:      project(f.Row, columns),
			Reason:   f.Reason,
		})
	}

	return view
}

// project exposes only the identity and template columns of a row.
func project(row domain.RowRecord, columns domain.Columns) map[string]string {
	projected := make(map[string]string, 4)
	for _, c := range []string{columns.EmployeeNumber, columns.FirstName, columns.LastName, columns.Template} {
		if c != "" {
			projected[c] = row.Value(c)
		}
	}
	return projected
}
