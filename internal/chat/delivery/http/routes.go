package http

import (
	"tastoria/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts POST /chat on rg. The endpoint is public and rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, requestsPerMin int) {
	rg.POST("/chat", mw.RateLimit(requestsPerMin), h.Respond)
}
