package handlers

import (
	"net/http"

	"github.com/SscSPs/tax_compliance_app/cmd/docs"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/middleware"
	"github.com/SscSPs/tax_compliance_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Every application route sees the caller's session, if any; the role
	// gates on individual routes decide who gets through.
	app := r.Group("/", middleware.SessionMiddleware(services.Auth, cfg.SessionCookieName))

	registerHomeRoutes(app)
	if err := registerAuthRoutes(app, cfg, services.Auth); err != nil {
		return err
	}
	registerComplianceRoutes(app, services.Compliance)
	registerTaxAuditRoutes(app, services.TaxReturn)
	registerTransferPricingRoutes(app, services.TransferPricing)
	registerRiskRoutes(app, services.Risk)
	registerTaxRoutes(app, services.Tax)
	registerExportRoutes(app, services.Export)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
