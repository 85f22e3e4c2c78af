package httpserver

import (
	"context"

	chatHTTP "tastoria/internal/chat/delivery/http"
	chatUC "tastoria/internal/chat/usecase"
	"tastoria/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupChatDomain registers POST /api/chat. The responder needs no storage.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := chatUC.New(srv.intents, srv.l)
	h := chatHTTP.New(srv.l, uc)
	chatHTTP.RegisterRoutes(api, h, mw, srv.rateLimitPerMin)

	srv.l.Infof(ctx, "Chat domain registered with %d intent rules", len(srv.intents.Rules()))
	return nil
}
