package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cfuentesp/moodlog/backend/internal/apierror"
	"github.com/cfuentesp/moodlog/backend/internal/logger"
)

// BearerToken verifies requests carry the configured API token.
// With an empty token the API runs open, which is the default for local use.
func BearerToken(token string) gin.HandlerFunc {
	if token == "" {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Debug("authentication failed: missing authorization header")
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Debug("authentication failed: invalid authorization format")
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(token)) != 1 {
			log.Warn("authentication failed: token mismatch")
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
			c.Abort()
			return
		}

		c.Next()
	}
}
