package services

import (
	"context"

	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
	"github.com/lacpaorocelyn/cpsunav/internal/validator"
)

// Request DTOs are defined next to their validation rules; services
// reference them via aliases.
type (
	RegisterRequest     = validator.RegisterRequest
	LoginRequest        = validator.LoginRequest
	UserUpdateRequest   = validator.UserUpdateRequest
	ReportCreateRequest = validator.ReportCreateRequest
	ReportUpdateRequest = validator.ReportUpdateRequest
)

// AuthResponse is returned by login.
type AuthResponse struct {
	AccessToken string             `json:"access_token"`
	User        *models.PublicUser `json:"user"`
}

type AuthService interface {
	// Register creates an account with a generated student ID and
	// returns the stored record minus the credential. The caller logs
	// in afterwards to obtain a token.
	Register(ctx context.Context, req *RegisterRequest) (*models.PublicUser, error)
	// Login authenticates a studentID/PIN pair.
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
}

type UserService interface {
	GetByID(ctx context.Context, id uint) (*models.PublicUser, error)
	// Update modifies the caller's own profile; callerID must match id.
	Update(ctx context.Context, id uint, callerID uint, req *UserUpdateRequest) (*models.PublicUser, error)
}

type BuildingService interface {
	List(ctx context.Context) ([]*models.Building, error)
	GetByID(ctx context.Context, id uint) (*models.Building, error)
}

type ReportService interface {
	// Create files a report; ownerID is nil for anonymous submissions.
	Create(ctx context.Context, req *ReportCreateRequest, ownerID *uint) (*models.Report, error)
	GetByID(ctx context.Context, id uint) (*models.Report, error)
	List(ctx context.Context, filters repositories.ReportFilters) ([]*models.Report, error)
	Update(ctx context.Context, id uint, req *ReportUpdateRequest) (*models.Report, error)
	// Delete is idempotent.
	Delete(ctx context.Context, id uint) error
}

type ExportService interface {
	// ExportReports renders the current reports as an xlsx workbook.
	ExportReports(ctx context.Context, filters repositories.ReportFilters) ([]byte, error)
}

// ServiceManager wires and exposes all services.
type ServiceManager interface {
	Auth() AuthService
	User() UserService
	Building() BuildingService
	Report() ReportService
	Export() ExportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
