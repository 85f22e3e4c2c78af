package http

import (
	"tastoria/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public account routes. Routes that send mail or
// check secrets share one per-client limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, requestsPerMin int) {
	limited := rg.Group("", mw.RateLimit(requestsPerMin))
	{
		limited.POST("/send-verification-otp", h.SendVerificationOTP)
		limited.POST("/verify-signup-otp", h.VerifySignupOTP)
		limited.POST("/register", h.Register)
		limited.POST("/verify-email", h.VerifyEmail)
		limited.POST("/login", h.Login)
	}

	rg.POST("/google-signup", h.GoogleSignup)
	rg.POST("/google-auth", h.GoogleAuth)
}
