package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notekeeper/platform/web/handler"
	"github.com/ribgsilva/notekeeper/platform/web/middleware"
)

// Get godoc
// @Summary Find a notes
// @Description Find a notes using its id
// @Tags Note
// @Produce json
// @Param X-Owner-Id header string true "Owner id"
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	id, ok := noteId(ctx)
	if !ok {
		return invalidId
	}

	get, err := h.Notes.Get(ctx, middleware.OwnerFrom(ctx), id)
	if err != nil {
		return failure(err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   get,
	}
}
