package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notekeeper/business/v1/note"
	"github.com/ribgsilva/notekeeper/platform/web/handler"
	"github.com/ribgsilva/notekeeper/platform/web/middleware"
)

// Update godoc
// @Summary Replace a note
// @Tags Note
// @Accept json
// @Produce json
// @Param X-Owner-Id header string true "Owner id"
// @Param id path string true "Note id"
// @Param note body note.UpdateNote true "Note"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [put]
func (h Handlers) Update(ctx *gin.Context) handler.Result {
	id, ok := noteId(ctx)
	if !ok {
		return invalidId
	}
	var upd note.UpdateNote
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		return badBody(err)
	}

	updated, err := h.Notes.Update(ctx, middleware.OwnerFrom(ctx), id, upd)
	if err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusOK, Body: updated}
}

// Patch godoc
// @Summary Change some fields of a note
// @Tags Note
// @Accept json
// @Produce json
// @Param X-Owner-Id header string true "Owner id"
// @Param id path string true "Note id"
// @Param note body note.PatchNote true "Fields to change"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [patch]
func (h Handlers) Patch(ctx *gin.Context) handler.Result {
	id, ok := noteId(ctx)
	if !ok {
		return invalidId
	}
	var p note.PatchNote
	if err := ctx.ShouldBindJSON(&p); err != nil {
		return badBody(err)
	}

	patched, err := h.Notes.Patch(ctx, middleware.OwnerFrom(ctx), id, p)
	if err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusOK, Body: patched}
}
