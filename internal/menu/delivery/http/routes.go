package http

import (
	"tastoria/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the menu routes. Reads are public, writes need an admin token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/venues", h.Venues)
	rg.GET("", h.List)
	rg.GET("/:id", h.Detail)

	admin := rg.Group("", mw.Auth(), mw.AdminOnly())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}
