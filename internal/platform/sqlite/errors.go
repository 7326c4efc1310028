package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/phrazzld/emphasis-trainer/internal/store"
)

// MapError maps a database error to an appropriate store error while keeping
// the original error in the chain.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", store.ErrKeyNotFound, err)
	}

	return err
}
