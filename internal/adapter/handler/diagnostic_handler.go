package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/salespulse/salespulse-backend/errors"
	dto "github.com/salespulse/salespulse-backend/internal/adapter/dto/common"
	"github.com/salespulse/salespulse-backend/internal/adapter/presenter"
	"github.com/salespulse/salespulse-backend/internal/usecase/diagnostic"
)

// DiagnosticHandler exposes the on-demand health diagnostic
type DiagnosticHandler struct {
	service *diagnostic.Service
	logger  *zap.Logger
}

// NewDiagnosticHandler creates a new diagnostic handler
func NewDiagnosticHandler(service *diagnostic.Service, logger *zap.Logger) *DiagnosticHandler {
	return &DiagnosticHandler{
		service: service,
		logger:  logger,
	}
}

// RunDiagnostic handles POST /v1/diagnostics/run
func (h *DiagnosticHandler) RunDiagnostic(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.Run(c.Request().Context(), tenantID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDiagnosticFailed(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToSnapshotView(result.Snapshot, result.Recommendations))
}

// GetLatest handles GET /v1/diagnostics/latest
func (h *DiagnosticHandler) GetLatest(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.Latest(c.Request().Context(), tenantID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSnapshotView(result.Snapshot, result.Recommendations))
}

// ListHistory handles GET /v1/diagnostics
func (h *DiagnosticHandler) ListHistory(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	snapshots, err := h.service.History(c.Request().Context(), tenantID, limit, offset)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	views := presenter.ToHistoryViews(snapshots)
	return HandleSuccess(h.logger, c, dto.ListResponse{Data: views, Count: len(views)})
}
