package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
)

type buildingService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewBuildingService(repo repositories.Repository, logger *slog.Logger) BuildingService {
	return &buildingService{repo: repo, logger: logger}
}

func (s *buildingService) List(ctx context.Context) ([]*models.Building, error) {
	buildings, err := s.repo.Building().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}
	return buildings, nil
}

func (s *buildingService) GetByID(ctx context.Context, id uint) (*models.Building, error) {
	building, err := s.repo.Building().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrBuildingNotFound
		}
		return nil, fmt.Errorf("failed to get building: %w", err)
	}
	return building, nil
}
