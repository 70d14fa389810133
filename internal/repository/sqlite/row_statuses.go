package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/kurochkinivan/doc_generator/internal/domain"
)

const TableRowStatuses = "row_statuses"

type RowStatusesRepository struct {
	db *sql.DB
	qb sq.StatementBuilderType
}

func NewRowStatusesRepository(db *sql.DB) *RowStatusesRepository {
	return &RowStatusesRepository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

// UpsertRowStatus is idempotent per (job_id, row_position); the latest status wins.
func (r *RowStatusesRepository) UpsertRowStatus(ctx context.Context, update domain.RowStatusUpdate) error {
	db := extractDB(ctx, r.db)

	query, args, err := r.qb.
		Insert(TableRowStatuses).
		Columns(
			"job_id",
			"row_position",
			"row_key",
			"template_id",
			"status",
			"message",
			"updated_at",
		).
		Values(
			update.JobID,
			update.Row,
			update.RowKey,
			update.TemplateID,
			update.Status.Code(),
			update.Message,
			time.Now().UTC(),
		).
		Suffix(`ON CONFLICT (job_id, row_position) DO UPDATE SET
			template_id = excluded.template_id,
			status = excluded.status,
			message = excluded.message,
			updated_at = excluded.updated_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *RowStatusesRepository) RowStatuses(ctx context.Context, jobID string) ([]domain.RowStatusUpdate, error) {
	db := extractDB(ctx, r.db)

	query, args, err := r.qb.
		Select(
			"row_position",
			"row_key",
			"template_id",
			"status",
			"message",
		).
		From(TableRowStatuses).
		Where(sq.Eq{"job_id": jobID}).
		OrderBy("row_position ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}
	defer rows.Close()

	var updates []domain.RowStatusUpdate
	for rows.Next() {
		var (
			u    = domain.RowStatusUpdate{JobID: jobID}
			code int
		)
		if err := rows.Scan(&u.Row, &u.RowKey, &u.TemplateID, &code, &u.Message); err != nil {
			return nil, scanRowError(err)
		}
		u.Status = domain.RowStatusFromCode(code)
		updates = append(updates, u)
	}

	if err := rows.Err(); err != nil {
		return nil, scanRowError(err)
	}

	return updates, nil
}
