package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/doc_generator/internal/domain"
)

const messageExt = ".txt"

func (o *Orchestrator) process(ctx context.Context, j *job) {
	defer o.wg.Done()
	defer close(j.done)

	if err := o.deps.Uploads.RecordUpload(ctx, j.id, j.source.FileName); err != nil {
		o.failJob(ctx, j, fmt.Errorf("failed to record upload: %w", err))
		return
	}

	validator, err := NewValidator(o.settings.Columns, j.source.Headers)
	if err != nil {
		o.failJob(ctx, j, err)
		return
	}

	o.publishProgress(ctx, j, j.Counters())

	seen := make(map[string]struct{}, len(j.source.Rows))

	for _, row := range j.source.Rows {
		if o.cancelled(ctx, j.id) {
			j.log.InfoContext(ctx, "row loop interrupted", slog.Int("row", row.Position))
			break
		}

		err := o.processRow(ctx, j, validator, seen, row)
		if errors.Is(err, domain.ErrCancelled) {
			j.log.InfoContext(ctx, "row interrupted by cancellation", slog.Int("row", row.Position))
			break
		}

		o.publishProgress(ctx, j, j.Counters())
	}

	o.finalize(ctx, j)
}

// processRow returns domain.ErrCancelled when the row was interrupted; every
// other outcome is recorded on the job.
func (o *Orchestrator) processRow(
	ctx context.Context,
	j *job,
	validator *Validator,
	seen map[string]struct{},
	row domain.RowRecord,
) error {
	cols := o.settings.Columns
	log := j.log.With(slog.String("row_key", row.Key), slog.Int("row", row.Position))

	err := o.deps.Statuses.UpsertRowStatus(ctx, domain.RowStatusUpdate{
		JobID:  j.id,
		Row:    row.Position,
		RowKey: row.Key,
		Status: domain.RowStatusPending,
	})
	if err != nil {
		log.WarnContext(ctx, "failed to register pending row", slog.String("err", err.Error()))
	}

	if violations := validator.Validate(row, seen); len(violations) > 0 {
		o.rowFailed(ctx, j, row, "", &domain.RowValidationError{Violations: violations})
		return nil
	}

	templateName := row.Value(cols.Template)

	tmpl, err := o.deps.Templates.Resolve(ctx, templateName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = fmt.Errorf("Template '%s' not found in database", templateName)
		}
		o.rowFailed(ctx, j, row, "", err)
		return nil
	}

	if tmpl.MessagePath == "" {
		o.rowFailed(ctx, j, row, tmpl.ID, fmt.Errorf("Email template file for '%s' not found", templateName))
		return nil
	}

	recipient := row.Value(cols.Recipient)

	message, err := o.deps.Renderer.RenderMessage(tmpl.MessagePath, row.Values, recipient)
	if err != nil {
		o.rowFailed(ctx, j, row, tmpl.ID, err)
		return nil
	}

	doc, err := o.deps.Renderer.Render(tmpl.RenderPath, row.Values)
	if err != nil {
		o.rowFailed(ctx, j, row, tmpl.ID, err)
		return nil
	}

	output, err := o.convert(ctx, j, row, doc)
	if err != nil {
		if errors.Is(err, domain.ErrCancelled) {
			return err
		}
		o.rowFailed(ctx, j, row, tmpl.ID, err)
		return nil
	}

	messagePath := strings.TrimSuffix(output, filepath.Ext(output)) + messageExt
	j.track(messagePath)

	if err := o.finishDocument(row, output, messagePath, message); err != nil {
		o.rowFailed(ctx, j, row, tmpl.ID, errors.Join(err, removeFiles(output, messagePath)))
		return nil
	}

	err = o.deps.Statuses.UpsertRowStatus(ctx, domain.RowStatusUpdate{
		JobID:      j.id,
		Row:        row.Position,
		RowKey:     row.Key,
		TemplateID: tmpl.ID,
		Status:     domain.RowStatusGenerated,
	})
	if err != nil {
		err = fmt.Errorf("failed to record generated row: %w", err)
		o.rowFailed(ctx, j, row, tmpl.ID, errors.Join(err, removeFiles(output, messagePath)))
		return nil
	}

	artifact := domain.DocumentArtifact{
		Path:      output,
		Recipient: recipient,
		FileName:  filepath.Base(output),
		Message:   message,
	}
	j.succeed(artifact)

	log.DebugContext(ctx, "document generated", slog.String("document", artifact.FileName))

	o.deps.Publisher.Publish(ctx, j.id, domain.Event{
		Type: domain.EventRowSucceeded,
		Row: &domain.RowEvent{
			Key:      row.Key,
			Name:     row.DisplayName,
			Document: artifact.FileName,
		},
	})

	return nil
}

// convert writes the rendered document to scratch and turns it into the
// job's PDF. Cancellation is checked right before and right after the
// converter runs.
func (o *Orchestrator) convert(ctx context.Context, j *job, row domain.RowRecord, doc *domain.RenderedDocument) (string, error) {
	baseName := j.reserveBaseName(row)
	scratch := o.deps.Artifacts.ScratchPath(j.id, baseName, doc.Ext)
	output := o.deps.Artifacts.DocumentPath(j.id, baseName)
	j.track(scratch, output)

	defer func() {
		if err := removeFiles(scratch); err != nil {
			j.log.WarnContext(ctx, "failed to remove scratch file", slog.String("err", err.Error()))
		}
	}()

	if err := os.MkdirAll(filepath.Dir(scratch), 0o755); err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}

	if err := os.WriteFile(scratch, doc.Content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write rendered document: %w", err)
	}

	if o.cancelled(ctx, j.id) {
		return "", domain.ErrCancelled
	}

	conv, err := o.deps.Converter.Start(ctx, scratch, output)
	if err != nil {
		if o.cancelled(ctx, j.id) {
			return "", domain.ErrCancelled
		}
		return "", err
	}

	err = conv.Wait()

	if o.cancelled(ctx, j.id) {
		if killErr := conv.Kill(); killErr != nil {
			j.log.WarnContext(ctx, "failed to kill conversion", slog.String("err", killErr.Error()))
		}
		return "", errors.Join(domain.ErrCancelled, removeFiles(output))
	}

	if err != nil {
		return "", err
	}

	return output, nil
}

func (o *Orchestrator) finishDocument(row domain.RowRecord, output, messagePath, message string) error {
	if col := o.settings.Columns.PDFPassword; col != "" && o.deps.Protector != nil {
		if password := row.Value(col); password != "" {
			if err := o.deps.Protector.Protect(output, password); err != nil {
				return fmt.Errorf("failed to protect document: %w", err)
			}
		}
	}

	if err := os.WriteFile(messagePath, []byte(message), 0o644); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (o *Orchestrator) rowFailed(ctx context.Context, j *job, row domain.RowRecord, templateID string, cause error) {
	reason := cause.Error()

	err := o.deps.Statuses.UpsertRowStatus(ctx, domain.RowStatusUpdate{
		JobID:      j.id,
		Row:        row.Position,
		RowKey:     row.Key,
		TemplateID: templateID,
		Status:     domain.RowStatusFailed,
		Message:    reason,
	})
	if err != nil {
		j.log.WarnContext(ctx, "failed to record failed row", slog.String("err", err.Error()))
	}

	j.fail(domain.RowFailure{Row: row, Reason: reason})

	j.log.InfoContext(ctx, "row failed",
		slog.Int("row", row.Position),
		slog.String("row_key", row.Key),
		slog.String("reason", reason),
	)

	o.deps.Publisher.Publish(ctx, j.id, domain.Event{
		Type: domain.EventRowFailed,
		Row: &domain.RowEvent{
			Key:     row.Key,
			Name:    row.DisplayName,
			Message: reason,
		},
	})
}

// finalize runs after the row loop of a job that was not cancelled by the
// user: error report, summary, COMPLETED and the completion event.
func (o *Orchestrator) finalize(ctx context.Context, j *job) {
	if o.deps.Cancellations.Contains(j.id) {
		return
	}

	if ctx.Err() != nil {
		o.failJob(ctx, j, fmt.Errorf("job interrupted: %w", context.Cause(ctx)))
		return
	}

	if failures := j.failuresSnapshot(); len(failures) > 0 {
		report, err := o.deps.Reports.Write(j.id, j.source, o.settings.Columns.Reason, failures, j.Secret())
		if err != nil {
			j.log.ErrorContext(ctx, "failed to build error report", slog.String("err", err.Error()))
			j.addWarning("failed to build error report: " + err.Error())
		} else {
			j.setErrorReport(report)
		}
	}

	if o.deps.Summaries != nil {
		path := o.deps.Artifacts.SummaryPath(j.id)
		if err := o.deps.Summaries.GenerateSummary(path, j.view(o.settings.Columns)); err != nil {
			j.log.WarnContext(ctx, "failed to generate job summary", slog.String("err", err.Error()))
		} else {
			j.setSummary(filepath.Base(path), path)
		}
	}

	if err := j.transition(domain.JobStatusCompleted); err != nil {
		// cancelled while finalizing, cleanup takes over
		j.log.InfoContext(ctx, "job not completed", slog.String("err", err.Error()))
		return
	}

	if err := o.deps.Uploads.FinishUpload(ctx, j.id, domain.JobStatusCompleted); err != nil {
		j.log.WarnContext(ctx, "failed to finish upload", slog.String("err", err.Error()))
	}

	view := j.view(o.settings.Columns)

	j.log.InfoContext(ctx, "job completed",
		slog.Int("succeeded", view.Counters.Succeeded),
		slog.Int("failed", view.Counters.Failed),
	)

	o.deps.Publisher.Publish(ctx, j.id, domain.Event{
		Type:        domain.EventCompleted,
		Status:      domain.JobStatusCompleted,
		Counters:    &view.Counters,
		ErrorReport: view.ErrorReport,
	})
}

// failJob ends a job that could not run at all.
func (o *Orchestrator) failJob(ctx context.Context, j *job, cause error) {
	if err := j.transition(domain.JobStatusFailed); err != nil {
		j.log.InfoContext(ctx, "job not failed", slog.String("err", err.Error()))
		return
	}

	j.addWarning(cause.Error())
	j.log.ErrorContext(ctx, "job failed", slog.String("err", cause.Error()))

	sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := o.deps.Uploads.FinishUpload(sinkCtx, j.id, domain.JobStatusFailed); err != nil {
		j.log.WarnContext(ctx, "failed to finish upload", slog.String("err", err.Error()))
	}

	o.deps.Publisher.Publish(sinkCtx, j.id, domain.Event{
		Type:    domain.EventError,
		Status:  domain.JobStatusFailed,
		Message: cause.Error(),
	})
}

func (o *Orchestrator) publishProgress(ctx context.Context, j *job, counters domain.Counters) {
	o.deps.Publisher.Publish(ctx, j.id, domain.Event{
		Type:     domain.EventProgress,
		Stage:    "processing",
		Counters: &counters,
	})
}

func removeFiles(paths ...string) error {
	var errs []error
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to remove %q: %w", p, err))
		}
	}
	return errors.Join(errs...)
}
