package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lacpaorocelyn/cpsunav/internal/events"
	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
	"github.com/lacpaorocelyn/cpsunav/internal/validator"
)

// ServiceManagerConfig holds dependencies shared by all services.
type ServiceManagerConfig struct {
	Repository repositories.Repository
	Logger     *slog.Logger
	Validator  *validator.Validator
	Publisher  events.EventPublisher
	Tokens     TokenConfig
}

type serviceManager struct {
	config ServiceManagerConfig

	auth     AuthService
	user     UserService
	building BuildingService
	report   ReportService
	export   ExportService

	mu          sync.RWMutex
	initialized bool
}

func NewServiceManager(config ServiceManagerConfig) (ServiceManager, error) {
	if config.Repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if config.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if config.Validator == nil {
		return nil, fmt.Errorf("validator is required")
	}
	return &serviceManager{config: config}, nil
}

func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.auth = NewAuthService(sm.config.Repository, sm.config.Logger, sm.config.Validator, sm.config.Tokens)
	sm.user = NewUserService(sm.config.Repository, sm.config.Logger, sm.config.Validator)
	sm.building = NewBuildingService(sm.config.Repository, sm.config.Logger)
	sm.report = NewReportService(sm.config.Repository, sm.config.Logger, sm.config.Validator, sm.config.Publisher)
	sm.export = NewExportService(sm.config.Repository, sm.config.Logger)

	sm.initialized = true
	sm.config.Logger.Info("Services initialized")

	return nil
}

func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.auth
}

func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.user
}

func (sm *serviceManager) Building() BuildingService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.building
}

func (sm *serviceManager) Report() ReportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.report
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.export
}

func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("services not initialized")
	}
	return sm.config.Repository.Ping(ctx)
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}

	if sm.config.Publisher != nil {
		if err := sm.config.Publisher.Close(); err != nil {
			sm.config.Logger.Warn("Failed to close event publisher", "error", err)
		}
	}

	sm.initialized = false
	sm.config.Logger.Info("Services shut down")

	return nil
}
