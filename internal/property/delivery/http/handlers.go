package http

import (
	"github.com/gin-gonic/gin"

	"property-listing/internal/model"
	"property-listing/pkg/response"
)

// List godoc
// @Summary     List properties
// @Description Returns a page of properties, optionally filtered by title and price range.
// @Tags        Properties
// @Produce     json
// @Param       title    query string false "Title contains"
// @Param       minPrice query number false "Minimum price (inclusive)"
// @Param       maxPrice query number false "Maximum price (inclusive)"
// @Param       page     query int    false "Page number (default: 1)"
// @Param       limit    query int    false "Page size (default: 10, max: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/v1/properties [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.List(c, h.newListData(output), output.Meta)
}

// Detail godoc
// @Summary     Get property by slug
// @Tags        Properties
// @Produce     json
// @Param       slug path string true "Property slug"
// @Success     200 {object} propertyResp
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/v1/properties/{slug} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.DetailBySlug(ctx, c.Param("slug"))
	if err != nil {
		h.l.Warnf(ctx, "uc.DetailBySlug: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPropertyResp(p))
}

// Create godoc
// @Summary     Create a property
// @Description Creates a property owned by the caller. Admins may pass ownerId.
// @Tags        Properties
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body createReq true "Property data"
// @Success     201 {object} propertyResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     403 {object} response.ErrorResp "Forbidden"
// @Failure     409 {object} response.ErrorResp "Conflict - slug already exists"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/v1/properties [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc, _ := model.GetScopeFromContext(ctx)
	p, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newPropertyResp(p))
}

// Update godoc
// @Summary     Update a property
// @Description Partial update. A changed title regenerates the slug unless a slug is given.
// @Tags        Properties
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id   path string    true "Property ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} propertyResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     403 {object} response.ErrorResp "Forbidden"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     409 {object} response.ErrorResp "Conflict - slug already exists"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/v1/properties/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc, _ := model.GetScopeFromContext(ctx)
	p, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPropertyResp(p))
}

// Delete godoc
// @Summary     Delete a property
// @Tags        Properties
// @Security    Bearer
// @Param       id path string true "Property ID"
// @Success     204
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     403 {object} response.ErrorResp "Forbidden"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/v1/properties/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _ := model.GetScopeFromContext(ctx)
	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}
