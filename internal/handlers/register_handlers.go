package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/middleware"
	"github.com/sarafcore/sarafcore_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Everything else requires a bearer token
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterJournalRoutes(v1, services.Journal, services.AML)
	registerSummaryRoutes(v1, services.Summary)
	registerCustomerRoutes(v1, services.Customer)
	registerConfigRoutes(v1, services.Config)
	registerAuditRoutes(v1, services.Audit)
	registerAMLRoutes(v1, services.AML)
	registerRatesRoutes(v1, services.Rates)
	registerReportingRoutes(v1, services.Reporting, cfg.DefaultBranchCode)
	registerUserRoutes(v1, services.User)
}
