package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	clientDomain "talenthire-backend/internal/domain/client"
	instDomain "talenthire-backend/internal/domain/installment"
	leadDomain "talenthire-backend/internal/domain/lead"
)

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func ok(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Response{Success: true, Message: message, Data: data})
}

func fail(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Response{Success: false, Message: message, Data: data})
}

func invalidBody(c echo.Context) error {
	return fail(c, http.StatusBadRequest, "invalid body", nil)
}

func validationFailed(c echo.Context, err error) error {
	return fail(c, http.StatusBadRequest, "validation failed", map[string]any{"details": ToFieldErrors(err)})
}

// failDomain maps domain errors onto the envelope: 404 for missing
// entities, 400 for validation and business-rule failures (ledger errors
// carry the computed remaining amount so the caller can self-correct),
// 500 for anything unexpected.
func failDomain(c echo.Context, err error) error {
	var (
		vErr *clientDomain.ValidationError
		aErr *instDomain.AmountExceedsRemainingError
		dErr *instDomain.DuplicateInstallmentNumberError
	)
	switch {
	case errors.Is(err, clientDomain.ErrNotFound),
		errors.Is(err, instDomain.ErrNotFound),
		errors.Is(err, leadDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return fail(c, http.StatusNotFound, "not found", nil)
	case errors.As(err, &vErr):
		return fail(c, http.StatusBadRequest, "validation failed", map[string]any{
			"details": []FieldError{{Field: vErr.Field, Message: vErr.Reason}},
		})
	case errors.Is(err, clientDomain.ErrInvalidTransition):
		return fail(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, clientDomain.ErrLeadEnrolled):
		return fail(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, instDomain.ErrInvalidChargeType):
		return fail(c, http.StatusBadRequest, err.Error(), nil)
	case errors.As(err, &aErr):
		return fail(c, http.StatusBadRequest, err.Error(), map[string]any{"remaining_amount": aErr.Remaining})
	case errors.As(err, &dErr):
		return fail(c, http.StatusBadRequest, err.Error(), map[string]any{"remaining_amount": dErr.Remaining})
	default:
		return fail(c, http.StatusInternalServerError, "internal error", nil)
	}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
