package http

import (
	"github.com/gin-gonic/gin"

	"tastoria/pkg/response"
)

// Venues godoc
// @Summary     List venues
// @Description Returns the cafes and bakeries that publish a menu.
// @Tags        Menu
// @Produce     json
// @Success     200 {object} response.Resp{data=[]venueResp}
// @Router      /api/menu/venues [GET]
func (h *handler) Venues(c *gin.Context) {
	response.OK(c, h.newVenuesResp(h.uc.Venues(c.Request.Context())))
}

// List godoc
// @Summary     List menu items
// @Description Returns menu items filtered by venue, category and free text.
// @Tags        Menu
// @Produce     json
// @Param       cafeId   query string false "Venue slug"
// @Param       category query string false "Category, or all"
// @Param       q        query string false "Matches name or description"
// @Param       limit    query int    false "Page size (default: 50)"
// @Param       offset   query int    false "Page offset (default: 0)"
// @Success     200 {object} response.Resp{data=listResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/menu [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.menu.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get menu item
// @Tags        Menu
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp{data=itemResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/menu/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	item, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "internal.menu.delivery.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(item))
}

// Create godoc
// @Summary     Create menu item
// @Description Admin only.
// @Tags        Menu
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Menu item"
// @Success     201 {object} response.Resp{data=itemResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/menu [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.menu.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newItemResp(item))
}

// Update godoc
// @Summary     Update menu item
// @Description Admin only. Omitted fields keep their current value.
// @Tags        Menu
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp{data=itemResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/menu/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.menu.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(item))
}

// Delete godoc
// @Summary     Delete menu item
// @Description Admin only.
// @Tags        Menu
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/menu/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "internal.menu.delivery.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
