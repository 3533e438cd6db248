package handlers

import (
	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/chinmay655/Managment-for-library/internal/middleware"
	"github.com/chinmay655/Managment-for-library/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerHomeRoutes(v1, services.Library, cfg.LibraryName)
	registerBookRoutes(v1, services.Library)
	registerMemberRoutes(v1, services.Library)
	registerCirculationRoutes(v1, services.Library)
	registerAttendanceRoutes(v1, services.Library)
	registerReportRoutes(v1, services.Library, cfg.OverdueDays)
	registerUserRoutes(v1, services.User)
	registerImportExportRoutes(v1, services.Library, services.User)
}
