package http

import (
	"tastoria/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts booking routes on the /api group. Slots are public.
func RegisterRoutes(api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	cafes := api.Group("/cafes/:cafeId")
	{
		cafes.GET("/slots", h.Slots)
		cafes.POST("/bookings", mw.Auth(), h.Create)
	}

	api.GET("/bookings/mine", mw.Auth(), h.ListMine)
}
