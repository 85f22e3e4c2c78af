package httpserver

import (
	"context"

	bookingHTTP "tastoria/internal/booking/delivery/http"
	bookingRepo "tastoria/internal/booking/repository/postgre"
	bookingUC "tastoria/internal/booking/usecase"
	"tastoria/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupBookingDomain registers the slot and booking routes.
func (srv HTTPServer) setupBookingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := bookingRepo.New(srv.postgresDB, srv.l)
	uc := bookingUC.New(srv.l, repo, srv.booking)
	h := bookingHTTP.New(srv.l, uc)
	bookingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Booking domain registered")
	return nil
}
