package labels

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notekeeper/business/v1/label"
	"github.com/ribgsilva/notekeeper/platform/validate"
	"github.com/ribgsilva/notekeeper/platform/web/handler"
	"github.com/ribgsilva/notekeeper/platform/web/middleware"
)

// Handlers serves the label endpoints of the authenticated owner
type Handlers struct {
	Labels *label.Labels
}

// List godoc
// @Summary List labels
// @Tags Label
// @Produce json
// @Param X-Owner-Id header string true "Owner id"
// @Success 200 {array} label.Label
// @Router /v1/labels [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	labels, err := h.Labels.List(ctx, middleware.OwnerFrom(ctx))
	if err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusOK, Body: labels}
}

// Get godoc
// @Summary Find a label
// @Tags Label
// @Produce json
// @Param X-Owner-Id header string true "Owner id"
// @Param id path string true "Label id"
// @Success 200 {object} label.Label
// @Failure 404 {object} handler.Error
// @Router /v1/labels/{id} [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	id, ok := labelId(ctx)
	if !ok {
		return invalidId
	}
	l, err := h.Labels.Get(ctx, middleware.OwnerFrom(ctx), id)
	if err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusOK, Body: l}
}

// Create godoc
// @Summary Create a label
// @Tags Label
// @Accept json
// @Produce json
// @Param X-Owner-Id header string true "Owner id"
// @Param label body label.NewLabel true "Label"
// @Success 201 {object} label.Label
// @Failure 400 {object} handler.Error
// @Router /v1/labels [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var newL label.NewLabel
	if err := ctx.ShouldBindJSON(&newL); err != nil {
		return badBody(err)
	}
	created, err := h.Labels.Create(ctx, middleware.OwnerFrom(ctx), newL)
	if err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusCreated, Body: created}
}

// Update godoc
// @Summary Rename a label
// @Tags Label
// @Accept json
// @Produce json
// @Param X-Owner-Id header string true "Owner id"
// @Param id path string true "Label id"
// @Param label body label.NewLabel true "Label"
// @Success 200 {object} label.Label
// @Failure 400 {object} handler.Error
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/labels/{id} [put]
// @Router /v1/labels/{id} [patch]
func (h Handlers) Update(ctx *gin.Context) handler.Result {
	id, ok := labelId(ctx)
	if !ok {
		return invalidId
	}
	var upd label.NewLabel
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		return badBody(err)
	}
	updated, err := h.Labels.Update(ctx, middleware.OwnerFrom(ctx), id, upd)
	if err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusOK, Body: updated}
}

// Delete godoc
// @Summary Delete a label
// @Tags Label
// @Param X-Owner-Id header string true "Owner id"
// @Param id path string true "Label id"
// @Success 204
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/labels/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	id, ok := labelId(ctx)
	if !ok {
		return invalidId
	}
	if err := h.Labels.Delete(ctx, middleware.OwnerFrom(ctx), id); err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusNoContent}
}

func labelId(ctx *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	return id, err == nil && id != 0
}

var invalidId = handler.Result{
	Status: http.StatusBadRequest,
	Body:   handler.Error{Message: "invalid id"},
}

func badBody(err error) handler.Result {
	return handler.Result{
		Status: http.StatusBadRequest,
		Body:   handler.Error{Message: "invalid body: " + err.Error()},
	}
}

func failure(err error) handler.Result {
	var vErr *validate.Error
	switch {
	case errors.As(err, &vErr):
		return handler.Result{Status: http.StatusBadRequest, Body: handler.Error{Message: "validation error", Fields: vErr.Fields}}
	case errors.Is(err, label.ErrNotFound):
		return handler.Result{Status: http.StatusNotFound, Body: handler.Error{Message: "label not found"}}
	case errors.Is(err, label.ErrPermissionDenied):
		return handler.Result{Status: http.StatusForbidden, Body: handler.Error{Message: err.Error()}}
	default:
		return handler.Result{Status: http.StatusInternalServerError, Body: handler.Error{Message: err.Error()}}
	}
}
