package http

import (
	"github.com/gin-gonic/gin"

	"tastoria/pkg/response"
)

// Slots godoc
// @Summary     List open slots
// @Description Returns the slots of the day that still have seats, with the seats left.
// @Tags        Bookings
// @Produce     json
// @Param       cafeId path  string true "Venue slug"
// @Param       date   query string true "Day (YYYY-MM-DD)"
// @Success     200 {object} response.Resp{data=slotsResp}
// @Failure     400 {object} response.Resp "Missing, malformed or past date"
// @Failure     404 {object} response.Resp "Cafe not found"
// @Router      /api/cafes/{cafeId}/slots [GET]
func (h *handler) Slots(c *gin.Context) {
	ctx := c.Request.Context()

	in, err := h.processSlotsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	slots, err := h.uc.Slots(ctx, in)
	if err != nil {
		h.l.Warnf(ctx, "internal.booking.delivery.http.Slots: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSlotsResp(in.CafeID, in.Date, slots))
}

// Create godoc
// @Summary     Book a slot
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       cafeId path string    true "Venue slug"
// @Param       body   body createReq true "Booking details"
// @Success     201 {object} response.Resp{data=bookingResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     409 {object} response.Resp "Slot is full"
// @Router      /api/cafes/{cafeId}/bookings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, in, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Create(ctx, sc, in)
	if err != nil {
		h.l.Warnf(ctx, "internal.booking.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newBookingResp(b))
}

// ListMine godoc
// @Summary     List my bookings
// @Tags        Bookings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp{data=[]bookingResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/bookings/mine [GET]
func (h *handler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	bs, err := h.uc.ListMine(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "internal.booking.delivery.http.ListMine: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingsResp(bs))
}
