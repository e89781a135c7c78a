package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notekeeper/platform/web/handler"
	"github.com/ribgsilva/notekeeper/platform/web/middleware"
)

// Archive godoc
// @Summary Toggle the archive flag of a note
// @Tags Note
// @Produce json
// @Param X-Owner-Id header string true "Owner id"
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id}/archive [post]
func (h Handlers) Archive(ctx *gin.Context) handler.Result {
	id, ok := noteId(ctx)
	if !ok {
		return invalidId
	}
	toggled, err := h.Notes.ToggleArchive(ctx, middleware.OwnerFrom(ctx), id)
	if err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusOK, Body: toggled}
}

// Trash godoc
// @Summary Toggle the trash flag of a note
// @Tags Note
// @Produce json
// @Param X-Owner-Id header string true "Owner id"
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id}/trash [post]
func (h Handlers) Trash(ctx *gin.Context) handler.Result {
	id, ok := noteId(ctx)
	if !ok {
		return invalidId
	}
	toggled, err := h.Notes.ToggleTrash(ctx, middleware.OwnerFrom(ctx), id)
	if err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusOK, Body: toggled}
}
