package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront_service/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// mapErrorToStatus resolves the error category attached by the lower layers.
// Unclassified failures collapse to 500 with the underlying message exposed
// for diagnosis.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
