package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var reportExportHeader = []string{"ID", "Title", "Description", "Category", "Status", "Latitude", "Longitude", "Reported By", "Created At"}

func (s *exportService) ExportReports(ctx context.Context, filters repositories.ReportFilters) ([]byte, error) {
	reports, err := s.repo.Report().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Reports"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range reportExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, report := range reports {
		row := i + 2
		values := []interface{}{
			report.ID,
			report.Title,
			report.Description,
			string(report.Category),
			string(report.Status),
			report.Latitude,
			report.Longitude,
			reportedBy(report),
			report.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	s.logger.Info("Reports exported", "count", len(reports))

	return buf.Bytes(), nil
}

func reportedBy(report *models.Report) string {
	if report.User == nil {
		return "anonymous"
	}
	return report.User.StudentID
}
