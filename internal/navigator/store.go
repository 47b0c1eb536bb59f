package navigator

import (
	"context"

	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
	"github.com/lacpaorocelyn/cpsunav/internal/services"
)

// serviceReportStore adapts the report service to the authoring flow.
type serviceReportStore struct {
	reports services.ReportService
}

func NewServiceReportStore(reports services.ReportService) ReportStore {
	return &serviceReportStore{reports: reports}
}

func (s *serviceReportStore) ListReports(ctx context.Context) ([]*models.Report, error) {
	return s.reports.List(ctx, repositories.ReportFilters{})
}

func (s *serviceReportStore) CreateReport(ctx context.Context, draft ReportDraft) (*models.Report, error) {
	req := &services.ReportCreateRequest{
		Title:       draft.Title,
		Description: draft.Description,
		Latitude:    draft.Latitude,
		Longitude:   draft.Longitude,
	}
	if draft.Category != "" {
		category := draft.Category
		req.Category = &category
	}
	return s.reports.Create(ctx, req, nil)
}

func (s *serviceReportStore) UpdateReport(ctx context.Context, draft ReportDraft) (*models.Report, error) {
	req := &services.ReportUpdateRequest{
		Title:       &draft.Title,
		Description: &draft.Description,
		Latitude:    &draft.Latitude,
		Longitude:   &draft.Longitude,
	}
	if draft.Category != "" {
		category := draft.Category
		req.Category = &category
	}
	return s.reports.Update(ctx, draft.ID, req)
}
