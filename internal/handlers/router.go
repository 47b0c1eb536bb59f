package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lacpaorocelyn/cpsunav/internal/routing"
	"github.com/lacpaorocelyn/cpsunav/internal/services"
	"github.com/lacpaorocelyn/cpsunav/internal/utils"
)

type HandlerManager struct {
	authHandler       *AuthHandler
	userHandler       *UserHandler
	buildingHandler   *BuildingHandler
	reportHandler     *ReportHandler
	directionsHandler *DirectionsHandler
	authMiddleware    *JWTAuthMiddleware
	serviceManager    services.ServiceManager
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	router *routing.Client,
	logger utils.Logger,
	jwtSecret string,
) *HandlerManager {
	return &HandlerManager{
		authHandler:       NewAuthHandler(serviceManager.Auth(), logger),
		userHandler:       NewUserHandler(serviceManager.User(), logger),
		buildingHandler:   NewBuildingHandler(serviceManager.Building(), logger),
		reportHandler:     NewReportHandler(serviceManager.Report(), serviceManager.Export(), logger),
		directionsHandler: NewDirectionsHandler(router, logger),
		authMiddleware:    NewJWTAuthMiddleware(jwtSecret),
		serviceManager:    serviceManager,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.HealthCheck)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", hm.authHandler.Register)
			auth.POST("/login", hm.authHandler.Login)
		}

		buildings := api.Group("/buildings")
		{
			buildings.GET("", hm.buildingHandler.ListBuildings)
			buildings.GET("/:id", hm.buildingHandler.GetBuilding)
		}

		reports := api.Group("/reports")
		{
			reports.GET("", hm.reportHandler.ListReports)
			reports.GET("/export", hm.authMiddleware.RequireAuth(), hm.reportHandler.ExportReports)
			reports.GET("/:id", hm.reportHandler.GetReport)

			// Mutations accept anonymous callers; a valid bearer token
			// attaches the owner.
			reports.POST("", hm.authMiddleware.OptionalAuth(), hm.reportHandler.CreateReport)
			reports.PATCH("/:id", hm.authMiddleware.OptionalAuth(), hm.reportHandler.UpdateReport)
			reports.DELETE("/:id", hm.authMiddleware.OptionalAuth(), hm.reportHandler.DeleteReport)
		}

		users := api.Group("/users")
		users.Use(hm.authMiddleware.RequireAuth())
		{
			users.GET("/:id", hm.userHandler.GetUser)
			users.PATCH("/:id", hm.userHandler.UpdateUser)
		}

		api.GET("/directions", hm.directionsHandler.GetDirections)
	}
}

// HealthCheck reports service and dependency health.
func (hm *HandlerManager) HealthCheck(c *gin.Context) {
	status := http.StatusOK
	body := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "campusnav",
	}
	if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
		status = http.StatusServiceUnavailable
		body["status"] = "unhealthy"
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}
