package repositories

import (
	"context"
	"errors"

	"github.com/lacpaorocelyn/cpsunav/internal/models"
)

// ErrNotFound is returned by lookups when no record matches.
var ErrNotFound = errors.New("record not found")

// IsNotFoundError reports whether err is a missing-record error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.User, error)
	ExistsByStudentID(ctx context.Context, studentID string) (bool, error)
	Update(ctx context.Context, user *models.User) error
}

type BuildingRepository interface {
	List(ctx context.Context) ([]*models.Building, error)
	GetByID(ctx context.Context, id uint) (*models.Building, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, buildings []models.Building) error
}

// ReportFilters narrows report listings.
type ReportFilters struct {
	Category *models.ReportCategory
	Status   *models.ReportStatus
}

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uint) (*models.Report, error)
	// List returns reports newest-first with the owning user preloaded.
	List(ctx context.Context, filters ReportFilters) ([]*models.Report, error)
	Update(ctx context.Context, report *models.Report) error
	// Delete is idempotent; removing a missing id is not an error.
	Delete(ctx context.Context, id uint) error
}

// Repository aggregates the per-entity repositories.
type Repository interface {
	User() UserRepository
	Building() BuildingRepository
	Report() ReportRepository

	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
