package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportPostgreSQL(db *gorm.DB) repositories.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return handleDBError(err, "create report")
	}
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	var report models.Report
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&report, id).Error; err != nil {
		return nil, handleDBError(err, "get report by id")
	}
	return &report, nil
}

func (r *reportRepository) List(ctx context.Context, filters repositories.ReportFilters) ([]*models.Report, error) {
	var reports []*models.Report

	query := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Preload("User").
		Order("created_at DESC")

	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	if err := query.Find(&reports).Error; err != nil {
		return nil, handleDBError(err, "list reports")
	}
	return reports, nil
}

func (r *reportRepository) Update(ctx context.Context, report *models.Report) error {
	if err := r.db.WithContext(ctx).Save(report).Error; err != nil {
		return handleDBError(err, "update report")
	}
	return nil
}

func (r *reportRepository) Delete(ctx context.Context, id uint) error {
	// Hard delete; gorm reports no error for a missing id, which keeps
	// the operation idempotent.
	if err := r.db.WithContext(ctx).Delete(&models.Report{}, id).Error; err != nil {
		return handleDBError(err, "delete report")
	}
	return nil
}
