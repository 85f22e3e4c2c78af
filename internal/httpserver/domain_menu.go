package httpserver

import (
	"context"

	menuHTTP "tastoria/internal/menu/delivery/http"
	menuRepo "tastoria/internal/menu/repository/postgre"
	menuUC "tastoria/internal/menu/usecase"
	"tastoria/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupMenuDomain registers /api/menu.
func (srv HTTPServer) setupMenuDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := menuRepo.New(srv.postgresDB, srv.l)
	uc := menuUC.New(repo, srv.l)
	h := menuHTTP.New(srv.l, uc)
	menuHTTP.RegisterRoutes(api.Group("/menu"), h, mw)

	srv.l.Infof(ctx, "Menu domain registered")
	return nil
}
