package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dashdto "github.com/salespulse/salespulse-backend/internal/adapter/dto/dashboard"
	"github.com/salespulse/salespulse-backend/internal/usecase/correlation"
	"github.com/salespulse/salespulse-backend/internal/usecase/dashboard"
)

// DashboardHandler exposes the value-delivered report
type DashboardHandler struct {
	service *dashboard.Service
	logger  *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service *dashboard.Service, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger,
	}
}

// GetCorrelation handles GET /v1/dashboard/correlation
func (h *DashboardHandler) GetCorrelation(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	periods, _ := strconv.Atoi(c.QueryParam("periods"))
	if periods <= 0 {
		periods = correlation.DefaultPeriods
	}
	if periods > 24 {
		periods = 24
	}

	points, err := h.service.Correlation(c.Request().Context(), tenantID, periods)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dashdto.CorrelationResponse{
		Periods: periods,
		Points:  points,
	})
}
