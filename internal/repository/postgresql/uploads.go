package postgresql

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/doc_generator/internal/domain"
)

const TableUploads = "uploads"

type UploadsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewUploadsRepository(pool *pgxpool.Pool) *UploadsRepository {
	return &UploadsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UploadsRepository) RecordUpload(ctx context.Context, jobID, fileName string) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableUploads).
		Columns(
			"job_id",
			"file_name",
			"status",
			"created_at",
		).
		Values(
			jobID,
			fileName,
			domain.JobStatusProcessing,
			time.Now().UTC(),
		).
		Suffix("ON CONFLICT (job_id) DO NOTHING").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *UploadsRepository) FinishUpload(ctx context.Context, jobID string, status domain.JobStatus) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableUploads).
		Set("status", status).
		Where(sq.Eq{"job_id": jobID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

// CancelRows marks every pending or generated row of the job as cancelled.
// Failed rows keep their reason.
func (r *UploadsRepository) CancelRows(ctx context.Context, jobID string) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableRowStatuses).
		Set("status", domain.RowStatusCancelled.Code()).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{
			"job_id": jobID,
			"status": []int{domain.RowStatusPending.Code(), domain.RowStatusGenerated.Code()},
		}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

// ResetProcessingUploads fails uploads left PROCESSING by a previous run.
func (r *UploadsRepository) ResetProcessingUploads(ctx context.Context) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableUploads).
		Set("status", domain.JobStatusFailed).
		Where(sq.Eq{"status": []domain.JobStatus{domain.JobStatusProcessing, domain.JobStatusCancelling}}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}
