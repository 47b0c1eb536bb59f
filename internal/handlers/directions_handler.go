package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lacpaorocelyn/cpsunav/internal/routing"
	"github.com/lacpaorocelyn/cpsunav/internal/utils"
)

// DirectionsHandler proxies walking-route queries to the routing
// service so clients that cannot reach it directly still get routes.
type DirectionsHandler struct {
	BaseHandler
	router *routing.Client
}

func NewDirectionsHandler(router *routing.Client, logger utils.Logger) *DirectionsHandler {
	return &DirectionsHandler{
		BaseHandler: NewBaseHandler(logger),
		router:      router,
	}
}

// DirectionsResponse is the proxy's wire shape.
type DirectionsResponse struct {
	Distance float64          `json:"distance"`
	Duration float64          `json:"duration"`
	Polyline []routing.LatLng `json:"polyline"`
}

// GetDirections computes a walking route between two coordinates
// @Summary Walking directions
// @Tags directions
// @Produce json
// @Param from_lat query number true "Origin latitude"
// @Param from_lng query number true "Origin longitude"
// @Param to_lat query number true "Destination latitude"
// @Param to_lng query number true "Destination longitude"
// @Success 200 {object} DirectionsResponse
// @Failure 400 {object} ErrorResponse "Bad coordinates"
// @Failure 502 {object} ErrorResponse "No route or routing service down"
// @Router /directions [get]
func (h *DirectionsHandler) GetDirections(c *gin.Context) {
	from, ok := parseCoord(c, "from_lat", "from_lng")
	if !ok {
		return
	}
	to, ok := parseCoord(c, "to_lat", "to_lng")
	if !ok {
		return
	}

	route, err := h.router.FootRoute(c.Request.Context(), from, to)
	if err != nil {
		h.handleServiceError(c, err, "Failed to fetch route")
		return
	}

	c.JSON(http.StatusOK, DirectionsResponse{
		Distance: route.Distance,
		Duration: route.Duration,
		Polyline: route.Polyline,
	})
}

func parseCoord(c *gin.Context, latKey, lngKey string) (routing.LatLng, bool) {
	lat, err := strconv.ParseFloat(c.Query(latKey), 64)
	if err != nil || lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid " + latKey})
		return routing.LatLng{}, false
	}
	lng, err := strconv.ParseFloat(c.Query(lngKey), 64)
	if err != nil || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid " + lngKey})
		return routing.LatLng{}, false
	}
	return routing.LatLng{Lat: lat, Lng: lng}, true
}
