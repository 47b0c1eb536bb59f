package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
)

// handleDBError normalizes gorm errors to repository errors.
func handleDBError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
