package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lacpaorocelyn/cpsunav/internal/routing"
	"github.com/lacpaorocelyn/cpsunav/internal/services"
	"github.com/lacpaorocelyn/cpsunav/internal/utils"
	"github.com/lacpaorocelyn/cpsunav/internal/validator"
)

// ErrorResponse is the error body for all endpoints.
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// BaseHandler carries the shared handler dependencies.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(args, "error", err)
	utils.FromContext(c, h.logger).Error(msg, args...)
}

// handleServiceError maps service errors onto HTTP responses.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error, fallback string) {
	var verrs validator.ValidationErrors
	var apiErr *routing.APIError

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: verrs,
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "Invalid credentials",
		})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "You can only modify your own profile",
		})
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrBuildingNotFound),
		errors.Is(err, services.ErrReportNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrStudentIDExhausted):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Could not allocate a student ID, please try again",
		})
	case errors.Is(err, routing.ErrNoRoute):
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Message: "Could not find a route.",
		})
	case errors.As(err, &apiErr):
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Message: "Routing service unavailable",
			Details: apiErr.Message,
		})
	default:
		h.LogError(c, err, fallback)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fallback,
			Details: err.Error(),
		})
	}
}
