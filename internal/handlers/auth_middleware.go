package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/internlink-app/internlink-backend/internal/services"
)

const userIDKey = "userID"

// RequireAuth resolves the bearer token to a user id and stores it in the
// request context. Every protected route reads the id from here and nowhere
// else; client-supplied user ids are never trusted.
func RequireAuth(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := sessions.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func authedUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
