package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// contextKeyUserID is the gin context key holding the authenticated user id.
const contextKeyUserID = "auth_user_id"

// requireAPIKey authenticates the request via the X-Api-Key header (falling
// back to the astraforge_key cookie) and stores the owning user id on the
// context. Unknown or missing credentials end the request with 401.
func (s *Server) requireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Api-Key")
		if raw == "" {
			if cookie, err := c.Cookie("astraforge_key"); err == nil {
				raw = cookie
			}
		}

		key, err := s.apiKeys.Authenticate(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(contextKeyUserID, key.UserID)
		c.Next()
	}
}

// callerID returns the authenticated user id for the request.
func callerID(c *gin.Context) string {
	return c.GetString(contextKeyUserID)
}
