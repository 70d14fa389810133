package pipeline

import (
	"context"
	"io"

	"github.com/kurochkinivan/doc_generator/internal/domain"
)

type SourceReader interface {
	Open(r io.Reader, filename, secret string) (*domain.Source, error)
}

type TemplateResolver interface {
	Resolve(ctx context.Context, name string) (domain.Template, error)
}

type Renderer interface {
	Render(tmplPath string, values map[string]string) (*domain.RenderedDocument, error)
	RenderMessage(tmplPath string, values map[string]string, recipient string) (string, error)
}

type Converter interface {
	Start(ctx context.Context, input, output string) (domain.Conversion, error)
}

type Protector interface {
	Protect(path, password string) error
}

type StatusSink interface {
	UpsertRowStatus(ctx context.Context, update domain.RowStatusUpdate) error
}

type UploadTracker interface {
	RecordUpload(ctx context.Context, jobID, fileName string) error
	FinishUpload(ctx context.Context, jobID string, status domain.JobStatus) error
	CancelRows(ctx context.Context, jobID string) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, jobID string, event domain.Event)
}

type ReportWriter interface {
	Write(
		jobID string,
		source *domain.Source,
		reasonColumn string,
		failures []domain.RowFailure,
		secret string,
	) (*domain.ErrorReport, error)
}

type SummaryGenerator interface {
	GenerateSummary(outputPath string, view domain.JobView) error
}

type ArtifactStore interface {
	DocumentPath(jobID, baseName string) string
	ScratchPath(jobID, baseName, ext string) string
	SummaryPath(jobID string) string
	RemoveJobFiles(jobID string) ([]string, error)
}
