package postgresql

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/doc_generator/internal/domain"
)

const TableRowStatuses = "row_statuses"

type RowStatusesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewRowStatusesRepository(pool *pgxpool.Pool) *RowStatusesRepository {
	return &RowStatusesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// UpsertRowStatus is idempotent per (job_id, row_position); the latest status wins.
func (r *RowStatusesRepository) UpsertRowStatus(ctx context.Context, update domain.RowStatusUpdate) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
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
			template_id = EXCLUDED.template_id,
			status = EXCLUDED.status,
			message = EXCLUDED.message,
			updated_at = EXCLUDED.updated_at
		`).
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

type rowStatus struct {
	Row        int    `db:"row_position"`
	RowKey     string `db:"row_key"`
	TemplateID string `db:"template_id"`
	Status     int    `db:"status"`
	Message    string `db:"message"`
}

func (r *RowStatusesRepository) RowStatuses(ctx context.Context, jobID string) ([]domain.RowStatusUpdate, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
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

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	statuses, err := pgx.CollectRows(rows, pgx.RowToStructByName[rowStatus])
	if err != nil {
		return nil, collectRowsError(err)
	}

	updates := make([]domain.RowStatusUpdate, 0, len(statuses))
	for _, s := range statuses {
		updates = append(updates, domain.RowStatusUpdate{
			JobID:      jobID,
			Row:        s.Row,
			RowKey:     s.RowKey,
			TemplateID: s.TemplateID,
			Status:     domain.RowStatusFromCode(s.Status),
			Message:    s.Message,
		})
	}

	return updates, nil
}
