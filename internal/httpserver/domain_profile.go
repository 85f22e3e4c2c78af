package httpserver

import (
	"context"

	menuRepo "tastoria/internal/menu/repository/postgre"
	"tastoria/internal/middleware"
	profileHTTP "tastoria/internal/profile/delivery/http"
	profileRepo "tastoria/internal/profile/repository/postgre"
	profileUC "tastoria/internal/profile/usecase"
	userRepo "tastoria/internal/user/repository/postgre"

	"github.com/gin-gonic/gin"
)

// setupProfileDomain registers /api/profile. It reads users and menu items
// through their own repositories.
func (srv HTTPServer) setupProfileDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := profileRepo.New(srv.postgresDB, srv.l)
	users := userRepo.New(srv.postgresDB, srv.l)
	items := menuRepo.New(srv.postgresDB, srv.l)

	uc := profileUC.New(srv.l, repo, users, items)
	h := profileHTTP.New(srv.l, uc)
	profileHTTP.RegisterRoutes(api.Group("/profile"), h, mw)

	srv.l.Infof(ctx, "Profile domain registered")
	return nil
}
