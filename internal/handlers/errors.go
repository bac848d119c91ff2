package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/paybooks/payroll_ledger/internal/apperrors"
	"github.com/paybooks/payroll_ledger/internal/core/services"
	"github.com/paybooks/payroll_ledger/internal/dto"
	"github.com/paybooks/payroll_ledger/internal/middleware"
)

// respondBindingError reports a request binding failure. Validator errors are
// flattened to per-field messages instead of the struct-path dump the library
// produces.
func respondBindingError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		messages := make([]string, len(fieldErrs))
		for i, fe := range fieldErrs {
			messages[i] = fe.Field() + " failed on " + fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + strings.Join(messages, "; ")})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
}

// respondError translates service errors to HTTP. An unbalanced voucher gets
// its own payload carrying both totals and the signed difference, so the
// bookkeeper sees the exact gap.
func respondError(c *gin.Context, err error) {
	var unbalanced *services.UnbalancedError
	if errors.As(err, &unbalanced) {
		diff := unbalanced.Difference()
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       unbalanced.Error(),
			"totalDebit":  unbalanced.TotalDebit,
			"totalCredit": unbalanced.TotalCredit,
			"difference":  diff,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrConcurrentModification):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("request failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseDateQuery reads a yyyy-mm-dd query parameter. When the parameter is
// absent, def is returned (zero def means the parameter was required).
func parseDateQuery(c *gin.Context, name string, def time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		if def.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"error": name + " query parameter is required"})
			return time.Time{}, false
		}
		return def, true
	}
	parsed, err := time.ParseInLocation(dto.DateLayout, raw, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a " + dto.DateLayout + " date"})
		return time.Time{}, false
	}
	return parsed, true
}
