package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-api/internal/domain"
	"blog-api/internal/service"
)

const identityKey = "identity"

func corsMiddleware(tokenHeader string) gin.HandlerFunc {
	allowHeaders := "Origin, Content-Type, Accept, Authorization"
	if !strings.EqualFold(tokenHeader, "Authorization") {
		allowHeaders += ", " + tokenHeader
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", allowHeaders)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    status,
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		})
		if status >= http.StatusInternalServerError {
			entry.Warn("request")
			return
		}
		entry.Info("request")
	}
}

// authenticate verifies the session token and attaches the caller's Identity.
func (h *Handler) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(h.tokenHeader))
		if raw == "" {
			abortWith(c, http.StatusUnauthorized, msgTokenNotFound)
			return
		}

		claims, err := h.tokens.Verify(raw)
		if err != nil {
			abortWith(c, http.StatusUnauthorized, msgTokenInvalid)
			return
		}

		identity, err := h.users.Identify(c.Request.Context(), claims.UID, claims.Nombre)
		if err != nil {
			if errors.Is(err, service.ErrUnknownAccount) {
				abortWith(c, http.StatusUnauthorized, msgTokenInvalid)
				return
			}
			h.logger.WithError(err).Error("resolve identity")
			abortWith(c, http.StatusInternalServerError, msgInternal)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// requireCapability rejects authenticated callers lacking capability with 403.
func requireCapability(capability domain.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			abortWith(c, http.StatusUnauthorized, msgTokenNotFound)
			return
		}
		if !identity.Has(capability) {
			abortWith(c, http.StatusForbidden, msgForbidden)
			return
		}
		c.Next()
	}
}

func identityFrom(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}
