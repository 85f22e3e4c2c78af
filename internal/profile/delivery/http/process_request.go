package http

import (
	"tastoria/internal/middleware"
	"tastoria/internal/model"
	pkgErrors "tastoria/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return model.Scope{}, updateReq{}, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.Scope{}, updateReq{}, pkgErrors.NewValidationError(err)
	}
	return sc, req, nil
}
