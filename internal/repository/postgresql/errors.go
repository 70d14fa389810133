package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kurochkinivan/doc_generator/internal/domain"
)

// SQLSTATE of a row status written for an upload that was never recorded.
const foreignKeyViolation = "23503"

func createQueryError(err error) error {
	return fmt.Errorf("failed to build query: %w", err)
}

func executeQueryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: upload is not recorded (%s)", domain.ErrNotFound, pgErr.ConstraintName)
	}

	return fmt.Errorf("failed to execute query: %w", err)
}

func collectRowsError(err error) error {
	return fmt.Errorf("failed to read row statuses: %w", err)
}
