package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lacpaorocelyn/cpsunav/internal/services"
	"github.com/lacpaorocelyn/cpsunav/internal/utils"
)

type BuildingHandler struct {
	BaseHandler
	buildingService services.BuildingService
}

func NewBuildingHandler(buildingService services.BuildingService, logger utils.Logger) *BuildingHandler {
	return &BuildingHandler{
		BaseHandler:     NewBaseHandler(logger),
		buildingService: buildingService,
	}
}

// ListBuildings returns every campus building.
func (h *BuildingHandler) ListBuildings(c *gin.Context) {
	buildings, err := h.buildingService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "Failed to list buildings")
		return
	}
	c.JSON(http.StatusOK, buildings)
}

// GetBuilding returns one building by id.
func (h *BuildingHandler) GetBuilding(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid building ID"})
		return
	}

	building, err := h.buildingService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		h.handleServiceError(c, err, "Failed to get building")
		return
	}
	c.JSON(http.StatusOK, building)
}
