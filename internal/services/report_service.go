package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lacpaorocelyn/cpsunav/internal/events"
	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
	"github.com/lacpaorocelyn/cpsunav/internal/validator"
)

type reportService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewReportService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) ReportService {
	return &reportService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

func (s *reportService) Create(ctx context.Context, req *ReportCreateRequest, ownerID *uint) (*models.Report, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	report := &models.Report{
		Title:       req.Title,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Category:    models.CategoryOther,
		Status:      models.ReportPending,
		UserID:      ownerID,
	}
	if req.Category != nil {
		report.Category = models.ReportCategory(*req.Category)
	}

	if err := s.repo.Report().Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	s.logger.Info("Report created", "report_id", report.ID, "category", report.Category)
	s.publish(ctx, events.TopicReportCreated, report)

	// Reload so the owner relation matches what list endpoints return.
	created, err := s.repo.Report().GetByID(ctx, report.ID)
	if err != nil {
		return report, nil
	}
	return created, nil
}

func (s *reportService) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	report, err := s.repo.Report().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

func (s *reportService) List(ctx context.Context, filters repositories.ReportFilters) ([]*models.Report, error) {
	reports, err := s.repo.Report().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

func (s *reportService) Update(ctx context.Context, id uint, req *ReportUpdateRequest) (*models.Report, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	report, err := s.repo.Report().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	if req.Title != nil {
		report.Title = *req.Title
	}
	if req.Description != nil {
		report.Description = *req.Description
	}
	if req.Latitude != nil {
		report.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		report.Longitude = *req.Longitude
	}
	if req.Category != nil {
		report.Category = models.ReportCategory(*req.Category)
	}
	if req.Status != nil {
		report.Status = models.ReportStatus(*req.Status)
	}

	if err := s.repo.Report().Update(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	s.logger.Info("Report updated", "report_id", report.ID, "status", report.Status)
	s.publish(ctx, events.TopicReportUpdated, report)

	return report, nil
}

func (s *reportService) Delete(ctx context.Context, id uint) error {
	report, err := s.repo.Report().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			// Deleting a missing report is a no-op.
			return nil
		}
		return fmt.Errorf("failed to get report: %w", err)
	}

	if err := s.repo.Report().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	s.logger.Info("Report deleted", "report_id", id)
	s.publish(ctx, events.TopicReportDeleted, report)

	return nil
}

// publish emits a lifecycle event; delivery failures are logged, not
// surfaced, so the write path never depends on the broker.
func (s *reportService) publish(ctx context.Context, topic string, report *models.Report) {
	if s.publisher == nil {
		return
	}

	event := events.ReportEvent{
		ReportID:   report.ID,
		Title:      report.Title,
		Category:   string(report.Category),
		Status:     string(report.Status),
		Latitude:   report.Latitude,
		Longitude:  report.Longitude,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		s.logger.Warn("Failed to publish report event", "topic", topic, "report_id", report.ID, "error", err)
	}
}
