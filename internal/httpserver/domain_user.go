package httpserver

import (
	"context"

	"tastoria/internal/middleware"
	userHTTP "tastoria/internal/user/delivery/http"
	userRepo "tastoria/internal/user/repository/postgre"
	userUC "tastoria/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

// setupUserDomain registers the account routes under /api/users.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := userRepo.New(srv.postgresDB, srv.l)
	uc := userUC.New(srv.l, repo, srv.signupStore, srv.mailer, srv.encrypter, srv.jwtManager, srv.signup)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api.Group("/users"), h, mw, srv.rateLimitPerMin)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
