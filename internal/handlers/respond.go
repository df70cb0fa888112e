package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internlink-app/internlink-backend/internal/apperr"
)

// respondError is the single place where error kinds become HTTP statuses.
// Clients get the short message; the full chain goes to the log.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Printf("%s %s: unexpected error: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := statusFor(appErr.Kind)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
	}
	c.JSON(status, gin.H{"error": appErr.Message()})
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.Unauthenticated:
		return http.StatusUnauthorized
	case apperr.PreconditionFailed, apperr.UploadRejected:
		return http.StatusBadRequest
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.RateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		// DispatchError, RecordAfterDispatch and Internal all surface as 500.
		return http.StatusInternalServerError
	}
}
