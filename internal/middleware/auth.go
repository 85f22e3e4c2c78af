package middleware

import (
	"strings"

	"tastoria/internal/model"
	"tastoria/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	authHeader   = "Authorization"
	bearerPrefix = "Bearer "
	scopeKey     = "scope"
)

// Auth requires a valid bearer token and stores the caller's Scope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeader)
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Debugf(c.Request.Context(), "internal.middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:  payload.UserID,
			Email:   payload.Email,
			IsAdmin: payload.IsAdmin,
		})
		c.Next()
	}
}

// AdminOnly must run after Auth.
func (m Middleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			response.Unauthorized(c)
			return
		}
		if !sc.IsAdmin {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// GetScope returns the caller set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok && !sc.IsZero()
}
