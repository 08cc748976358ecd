package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	profiledto "github.com/salespulse/salespulse-backend/internal/adapter/dto/profile"
	"github.com/salespulse/salespulse-backend/internal/usecase/profile"
)

// ProfileHandler handles the business profile and onboarding score
type ProfileHandler struct {
	service *profile.Service
	logger  *zap.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service *profile.Service, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger,
	}
}

// GetProfile handles GET /v1/profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	p, err := h.service.Get(c.Request().Context(), tenantID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, p)
}

// UpdateProfile handles PUT /v1/profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req profiledto.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	p, err := h.service.Update(c.Request().Context(), tenantID, profile.UpdateInput{
		CompanyName:     req.CompanyName,
		Description:     req.Description,
		TargetAudience:  req.TargetAudience,
		Differentiators: req.Differentiators,
		PainPoints:      req.PainPoints,
		GooglePlaceID:   req.GooglePlaceID,
		Instagram:       req.Instagram,
		Facebook:        req.Facebook,
		Website:         req.Website,
		Email:           req.Email,
		Phone:           req.Phone,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, p)
}

// GetCompleteness handles GET /v1/profile/completeness
func (h *ProfileHandler) GetCompleteness(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.OnboardingCompleteness(c.Request().Context(), tenantID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, result)
}
