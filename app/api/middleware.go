package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joefazee/wagerlog/internal/logger"
	"github.com/joefazee/wagerlog/internal/security"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"
	UserIDContextKey        = "userID"
)

// Authenticate verifies the bearer token and stores the caller's ID on the context.
func Authenticate(tokenMaker security.Maker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeaderKey)
		if authHeader == "" {
			UnauthorizedResponse(c)
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 || fields[0] != AuthorizationTypeBearer {
			UnauthorizedResponse(c)
			c.Abort()
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil || !payload.HasScope(security.TokenScopeAccess) {
			UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set(UserIDContextKey, payload.UserID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user or uuid.Nil
func CurrentUserID(c *gin.Context) uuid.UUID {
	if v, exists := c.Get(UserIDContextKey); exists {
		if userID, ok := v.(uuid.UUID); ok {
			return userID
		}
	}
	return uuid.Nil
}

// RequestLogger writes one structured line per request.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		props := logger.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if userID := CurrentUserID(c); userID != uuid.Nil {
			props["user_id"] = userID.String()
		}
		if len(c.Errors) > 0 {
			log.Error(c.Errors.Last(), props)
			return
		}
		log.Info("request", props)
	}
}
