package http

import (
	"net/http"
	"time"

	"tastoria/internal/booking"
	"tastoria/internal/middleware"
	"tastoria/internal/model"
	pkgErrors "tastoria/pkg/errors"
	"tastoria/pkg/response"

	"github.com/gin-gonic/gin"
)

var errDateRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "date is required (YYYY-MM-DD)")

func (h *handler) processSlotsReq(c *gin.Context) (booking.SlotsInput, error) {
	raw := c.Query("date")
	if raw == "" {
		return booking.SlotsInput{}, errDateRequired
	}
	date, err := response.ParseDate(raw)
	if err != nil {
		return booking.SlotsInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return booking.SlotsInput{CafeID: c.Param("cafeId"), Date: date}, nil
}

func (h *handler) processCreateReq(c *gin.Context) (model.Scope, booking.CreateInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return model.Scope{}, booking.CreateInput{}, err
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.Scope{}, booking.CreateInput{}, pkgErrors.NewValidationError(err)
	}
	if time.Time(req.Date).IsZero() {
		return model.Scope{}, booking.CreateInput{}, errDateRequired
	}
	return sc, req.toInput(c.Param("cafeId")), nil
}

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}
