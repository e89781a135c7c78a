package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notekeeper/platform/web/handler"
	"github.com/ribgsilva/notekeeper/platform/web/middleware"
)

// List godoc
// @Summary List active notes
// @Description List the notes of the owner that are neither archived nor trashed
// @Tags Note
// @Produce json
// @Param X-Owner-Id header string true "Owner id"
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Router /v1/notes [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	notes, err := h.Notes.ListActive(ctx, middleware.OwnerFrom(ctx))
	if err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusOK, Body: notes}
}

// ListArchived godoc
// @Summary List archived notes
// @Tags Note
// @Produce json
// @Param X-Owner-Id header string true "Owner id"
// @Success 200 {array} note.Note
// @Router /v1/notes/archived [get]
func (h Handlers) ListArchived(ctx *gin.Context) handler.Result {
	notes, err := h.Notes.ListArchived(ctx, middleware.OwnerFrom(ctx))
	if err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusOK, Body: notes}
}

// ListTrashed godoc
// @Summary List trashed notes
// @Tags Note
// @Produce json
// @Param X-Owner-Id header string true "Owner id"
// @Success 200 {array} note.Note
// @Router /v1/notes/trashed [get]
func (h Handlers) ListTrashed(ctx *gin.Context) handler.Result {
	notes, err := h.Notes.ListTrashed(ctx, middleware.OwnerFrom(ctx))
	if err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusOK, Body: notes}
}
