package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/salespulse/salespulse-backend/errors"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
	"github.com/salespulse/salespulse-backend/internal/infrastructure/http/middleware"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// tenantFromContext reads the tenant scope set by the auth middleware
func tenantFromContext(c echo.Context) (uuid.UUID, error) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return uuid.Nil, errors.ErrUnauthenticated()
	}
	return tenantID, nil
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	appErr := toAppError(err)
	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps domain sentinel errors onto the AppError taxonomy; any
// unknown error becomes an internal server error.
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, entities.ErrResponseNotFound):
		return errors.ErrNotFound("Response")
	case stdErrors.Is(err, entities.ErrOpportunityNotFound):
		return errors.ErrNotFound("Lead")
	case stdErrors.Is(err, entities.ErrProfileNotFound):
		return errors.ErrNotFound("Profile")
	case stdErrors.Is(err, entities.ErrSnapshotNotFound):
		return errors.ErrNotFound("Diagnostic snapshot")
	case stdErrors.Is(err, entities.ErrInvalidScore),
		stdErrors.Is(err, entities.ErrInvalidValue):
		return errors.ErrScoringInvalidInput(err.Error())
	case stdErrors.Is(err, entities.ErrInvalidOppStatus),
		stdErrors.Is(err, entities.ErrResponseNotDetractor):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, entities.ErrUnauthorized):
		return errors.ErrUnauthenticated()
	case stdErrors.Is(err, entities.ErrForbidden):
		return errors.ErrForbidden("forbidden")
	default:
		return errors.ErrInternal(err)
	}
}

// bindAndValidate decodes the request body and runs struct validation
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrInvalidArgument(err.Error())
	}
	return nil
}
