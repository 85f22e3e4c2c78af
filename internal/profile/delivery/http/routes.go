package http

import (
	"tastoria/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the profile routes. Every route needs a bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())

	rg.GET("/me", h.Me)
	rg.PUT("", h.Update)
	rg.DELETE("", h.Delete)

	rg.GET("/favorites", h.ListFavorites)
	rg.POST("/favorites/:itemId", h.AddFavorite)
	rg.DELETE("/favorites/:itemId", h.RemoveFavorite)
}
