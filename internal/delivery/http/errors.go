package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rashikfit/backend/internal/domain"
)

// errorStatus maps sentinel errors to HTTP status codes. First match wins.
var errorStatus = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidRequest, http.StatusBadRequest},
	{domain.ErrInvalidQuantity, http.StatusBadRequest},
	{domain.ErrNoBaseWeight, http.StatusBadRequest},
	{domain.ErrInvalidMealCount, http.StatusBadRequest},

	{domain.ErrUnauthenticated, http.StatusUnauthorized},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrGoogleAccount, http.StatusUnauthorized},
	{domain.ErrPasswordAccount, http.StatusUnauthorized},

	{domain.ErrRecipeNotFound, http.StatusNotFound},
	{domain.ErrFoodNotFound, http.StatusNotFound},
	{domain.ErrEntryNotFound, http.StatusNotFound},
	{domain.ErrSlotNotFound, http.StatusNotFound},
	{domain.ErrProductNotFound, http.StatusNotFound},
	{domain.ErrNotFound, http.StatusNotFound},

	{domain.ErrUserExists, http.StatusConflict},

	{domain.ErrNoTargetMacros, http.StatusUnprocessableEntity},
	{domain.ErrPlanIncomplete, http.StatusUnprocessableEntity},
	{domain.ErrZeroCaloriePlan, http.StatusUnprocessableEntity},
	{domain.ErrLowConfidence, http.StatusUnprocessableEntity},

	{domain.ErrRateLimited, http.StatusTooManyRequests},
	{domain.ErrUSDAAPIFailure, http.StatusBadGateway},
	{domain.ErrImportDisabled, http.StatusServiceUnavailable},
}

func statusFor(err error) int {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes {"error": ...} with the mapped status. Server errors are
// logged and their details hidden from the client.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway && status != http.StatusServiceUnavailable {
		h.logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.AbortWithStatusJSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
