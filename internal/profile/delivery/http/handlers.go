package http

import (
	"github.com/gin-gonic/gin"

	"tastoria/pkg/response"
)

// Me godoc
// @Summary     Get my profile
// @Tags        Profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp{data=profileResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "User not found"
// @Router      /api/profile/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "internal.profile.delivery.http.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProfileResp(u))
}

// Update godoc
// @Summary     Update my profile
// @Description Only the fields present and non-empty in the body are changed. Preferences are replaced as a whole.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateReq true "Profile fields"
// @Success     200 {object} response.Resp{data=profileResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "User not found"
// @Router      /api/profile [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.profile.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProfileResp(u))
}

// Delete godoc
// @Summary     Delete my account
// @Tags        Profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp{data=messageResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "User not found"
// @Router      /api/profile [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc); err != nil {
		h.l.Warnf(ctx, "internal.profile.delivery.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, messageResp{Message: "Account deleted successfully"})
}

// ListFavorites godoc
// @Summary     List my favorite menu items
// @Tags        Profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp{data=[]favoriteResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/profile/favorites [GET]
func (h *handler) ListFavorites(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	favs, err := h.uc.ListFavorites(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "internal.profile.delivery.http.ListFavorites: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newFavoritesResp(favs))
}

// AddFavorite godoc
// @Summary     Save a menu item
// @Description Saving an item that is already saved succeeds.
// @Tags        Profile
// @Produce     json
// @Security    BearerAuth
// @Param       itemId path string true "Menu item ID"
// @Success     200 {object} response.Resp{data=favoriteResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Menu item not found"
// @Router      /api/profile/favorites/{itemId} [POST]
func (h *handler) AddFavorite(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	fav, err := h.uc.AddFavorite(ctx, sc, c.Param("itemId"))
	if err != nil {
		h.l.Warnf(ctx, "internal.profile.delivery.http.AddFavorite: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newFavoriteResp(fav))
}

// RemoveFavorite godoc
// @Summary     Remove a saved menu item
// @Tags        Profile
// @Produce     json
// @Security    BearerAuth
// @Param       itemId path string true "Menu item ID"
// @Success     200 {object} response.Resp{data=messageResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Menu item not found"
// @Router      /api/profile/favorites/{itemId} [DELETE]
func (h *handler) RemoveFavorite(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.RemoveFavorite(ctx, sc, c.Param("itemId")); err != nil {
		h.l.Warnf(ctx, "internal.profile.delivery.http.RemoveFavorite: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, messageResp{Message: "Removed from favorites"})
}
