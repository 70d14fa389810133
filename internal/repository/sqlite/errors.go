package sqlite

import (
	"errors"
	"fmt"

	"github.com/kurochkinivan/doc_generator/internal/domain"
	driver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to build query: %w", err)
}

func executeQueryError(err error) error {
	var sqliteErr *driver.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return fmt.Errorf("%w: upload is not recorded", domain.ErrNotFound)
	}

	return fmt.Errorf("failed to execute query: %w", err)
}

func scanRowError(err error) error {
	return fmt.Errorf("failed to read row statuses: %w", err)
}
