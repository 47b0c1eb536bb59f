package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
	"github.com/lacpaorocelyn/cpsunav/internal/services"
	"github.com/lacpaorocelyn/cpsunav/internal/utils"
)

type ReportHandler struct {
	BaseHandler
	reportService services.ReportService
	exportService services.ExportService
}

func NewReportHandler(reportService services.ReportService, exportService services.ExportService, logger utils.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   NewBaseHandler(logger),
		reportService: reportService,
		exportService: exportService,
	}
}

func parseReportFilters(c *gin.Context) repositories.ReportFilters {
	var filters repositories.ReportFilters
	if v := c.Query("category"); v != "" {
		category := models.ReportCategory(v)
		filters.Category = &category
	}
	if v := c.Query("status"); v != "" {
		status := models.ReportStatus(v)
		filters.Status = &status
	}
	return filters
}

// ListReports returns reports newest-first with their owners attached
// @Summary List reports
// @Tags reports
// @Produce json
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status"
// @Success 200 {array} models.Report
// @Router /reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.reportService.List(c.Request.Context(), parseReportFilters(c))
	if err != nil {
		h.handleServiceError(c, err, "Failed to list reports")
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetReport returns one report by id.
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid report ID"})
		return
	}

	report, err := h.reportService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		h.handleServiceError(c, err, "Failed to get report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// CreateReport files a new report. A valid bearer token attaches the
// caller as owner; without one the report is anonymous.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req services.ReportCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	var ownerID *uint
	if id, ok := currentUserID(c); ok {
		ownerID = &id
	}

	h.LogRequest(c, "Creating report", "title", req.Title)

	report, err := h.reportService.Create(c.Request.Context(), &req, ownerID)
	if err != nil {
		h.handleServiceError(c, err, "Failed to create report")
		return
	}

	c.JSON(http.StatusCreated, report)
}

// UpdateReport applies a partial update to a report.
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid report ID"})
		return
	}

	var req services.ReportUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	report, err := h.reportService.Update(c.Request.Context(), uint(id), &req)
	if err != nil {
		h.handleServiceError(c, err, "Failed to update report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// DeleteReport removes a report. Deleting a missing id still returns
// 204.
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid report ID"})
		return
	}

	if err := h.reportService.Delete(c.Request.Context(), uint(id)); err != nil {
		h.handleServiceError(c, err, "Failed to delete report")
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportReports streams the current reports as an xlsx workbook
// @Summary Export reports
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /reports/export [get]
func (h *ReportHandler) ExportReports(c *gin.Context) {
	h.LogRequest(c, "Exporting reports")

	data, err := h.exportService.ExportReports(c.Request.Context(), parseReportFilters(c))
	if err != nil {
		h.handleServiceError(c, err, "Failed to export reports")
		return
	}

	filename := fmt.Sprintf("campus-reports-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
