package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salespulse/salespulse-backend/internal/infrastructure/http/middleware"
	"github.com/salespulse/salespulse-backend/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	authMiddleware    *middleware.AuthMiddleware
	authHandler       *AuthHandler
	crmHandler        *CRMHandler
	profileHandler    *ProfileHandler
	diagnosticHandler *DiagnosticHandler
	dashboardHandler  *DashboardHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *AuthHandler,
	crmHandler *CRMHandler,
	profileHandler *ProfileHandler,
	diagnosticHandler *DiagnosticHandler,
	dashboardHandler *DashboardHandler,
) *Router {
	return &Router{
		cfg:               cfg,
		authMiddleware:    authMiddleware,
		authHandler:       authHandler,
		crmHandler:        crmHandler,
		profileHandler:    profileHandler,
		diagnosticHandler: diagnosticHandler,
		dashboardHandler:  dashboardHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Token refresh sits outside the auth middleware: an expired access
	// token is the very state it serves.
	rt.setupAuthRoutes(e.Group("/v1"))

	// API v1 group, all tenant-scoped behind JWT auth
	v1 := e.Group("/v1", rt.authMiddleware.Authenticate)

	rt.setupCRMRoutes(v1)
	rt.setupProfileRoutes(v1)
	rt.setupDiagnosticRoutes(v1)
	rt.setupDashboardRoutes(v1)
}

// setupAuthRoutes configures token refresh routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	g.POST("/auth/refresh", rt.authHandler.RefreshToken)
}

// setupCRMRoutes configures response and lead routes
func (rt *Router) setupCRMRoutes(g *echo.Group) {
	g.POST("/responses", rt.crmHandler.CaptureResponse)
	g.GET("/responses", rt.crmHandler.ListResponses)
	g.PATCH("/responses/:id/resolve", rt.crmHandler.ResolveResponse)

	g.POST("/leads", rt.crmHandler.CreateLead)
	g.GET("/leads", rt.crmHandler.ListLeads)
	g.PATCH("/leads/:id", rt.crmHandler.UpdateLead)
}

// setupProfileRoutes configures profile routes
func (rt *Router) setupProfileRoutes(g *echo.Group) {
	g.GET("/profile", rt.profileHandler.GetProfile)
	g.PUT("/profile", rt.profileHandler.UpdateProfile)
	g.GET("/profile/completeness", rt.profileHandler.GetCompleteness)
}

// setupDiagnosticRoutes configures diagnostic routes
func (rt *Router) setupDiagnosticRoutes(g *echo.Group) {
	g.POST("/diagnostics/run", rt.diagnosticHandler.RunDiagnostic)
	g.GET("/diagnostics/latest", rt.diagnosticHandler.GetLatest)
	g.GET("/diagnostics", rt.diagnosticHandler.ListHistory)
}

// setupDashboardRoutes configures dashboard routes
func (rt *Router) setupDashboardRoutes(g *echo.Group) {
	g.GET("/dashboard/correlation", rt.dashboardHandler.GetCorrelation)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
