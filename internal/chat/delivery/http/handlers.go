package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond godoc
// @Summary     Chat with the assistant
// @Description Classifies a free-text message and returns a canned reply, optionally with a navigation directive.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body respondReq true "Chat message"
// @Success     200 {object} respondResp
// @Failure     400 {object} errorResp "Empty message or malformed body"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} errorResp "Non-string message or internal error"
// @Router      /api/chat [POST]
func (h *handler) Respond(c *gin.Context) {
	ctx := c.Request.Context()
	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "internal.chat.delivery.http.Respond: recovered: %v", r)
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorResp{Message: msgInternal})
		}
	}()

	req, err := h.processRespondReq(c)
	if err != nil {
		if errors.Is(err, errMessageType) {
			h.l.Errorf(ctx, "internal.chat.delivery.http.Respond: %v", err)
		}
		h.writeError(c, err)
		return
	}

	out, err := h.uc.Respond(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.chat.delivery.http.Respond: %v", err)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newRespondResp(out))
}

func (h *handler) writeError(c *gin.Context, err error) {
	status, msg := h.mapError(err)
	c.JSON(status, errorResp{Message: msg})
}
