package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/salespulse/salespulse-backend/errors"
	dto "github.com/salespulse/salespulse-backend/internal/adapter/dto/common"
	crmdto "github.com/salespulse/salespulse-backend/internal/adapter/dto/crm"
	"github.com/salespulse/salespulse-backend/internal/adapter/presenter"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
	"github.com/salespulse/salespulse-backend/internal/domain/repositories"
	"github.com/salespulse/salespulse-backend/internal/usecase/crm"
)

// CRMHandler handles satisfaction responses and the lead workflow
type CRMHandler struct {
	service *crm.Service
	logger  *zap.Logger
}

// NewCRMHandler creates a new crm handler
func NewCRMHandler(service *crm.Service, logger *zap.Logger) *CRMHandler {
	return &CRMHandler{
		service: service,
		logger:  logger,
	}
}

// CaptureResponse handles POST /v1/responses
func (h *CRMHandler) CaptureResponse(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req crmdto.CaptureResponseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	response, err := h.service.CaptureResponse(c.Request().Context(), tenantID, crm.CaptureResponseInput{
		Score:       req.Score,
		Comment:     req.Comment,
		RespondedAt: req.RespondedAt,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToResponseView(response))
}

// ResolveResponse handles PATCH /v1/responses/:id/resolve
func (h *CRMHandler) ResolveResponse(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid response id"))
	}

	response, err := h.service.ResolveResponse(c.Request().Context(), tenantID, responseID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToResponseView(response))
}

// ListResponses handles GET /v1/responses
func (h *CRMHandler) ListResponses(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	responses, err := h.service.ListResponses(c.Request().Context(), tenantID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	views := presenter.ToResponseViews(responses)
	return HandleSuccess(h.logger, c, dto.ListResponse{Data: views, Count: len(views)})
}

// CreateLead handles POST /v1/leads
func (h *CRMHandler) CreateLead(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req crmdto.CreateLeadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	lead, err := h.service.CreateLead(c.Request().Context(), tenantID, crm.CreateLeadInput{
		Title:         req.Title,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		MonetaryValue: req.MonetaryValue,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToLeadView(lead))
}

// UpdateLead handles PATCH /v1/leads/:id
func (h *CRMHandler) UpdateLead(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid lead id"))
	}

	var req crmdto.UpdateLeadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := crm.UpdateLeadInput{
		Title:         req.Title,
		MonetaryValue: req.MonetaryValue,
	}
	if req.Status != nil {
		status := entities.OpportunityStatus(*req.Status)
		input.Status = &status
	}

	lead, err := h.service.UpdateLead(c.Request().Context(), tenantID, leadID, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToLeadView(lead))
}

// ListLeads handles GET /v1/leads
func (h *CRMHandler) ListLeads(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req crmdto.ListLeadsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	filters := repositories.OpportunityFilters{}
	if req.PageSize > 0 {
		filters.Limit = req.PageSize
		if req.Page > 1 {
			filters.Offset = (req.Page - 1) * req.PageSize
		}
	}
	if req.Status != nil {
		status := entities.OpportunityStatus(*req.Status)
		filters.Status = &status
	}

	leads, err := h.service.ListLeads(c.Request().Context(), tenantID, filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	views := presenter.ToLeadViews(leads)
	return HandleSuccess(h.logger, c, dto.ListResponse{Data: views, Count: len(views)})
}
