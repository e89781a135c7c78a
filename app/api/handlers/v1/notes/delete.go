package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notekeeper/platform/web/handler"
	"github.com/ribgsilva/notekeeper/platform/web/middleware"
)

// Delete godoc
// @Summary Delete a note
// @Tags Note
// @Param X-Owner-Id header string true "Owner id"
// @Param id path string true "Note id"
// @Success 204
// @Failure 403 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	id, ok := noteId(ctx)
	if !ok {
		return invalidId
	}
	if err := h.Notes.Delete(ctx, middleware.OwnerFrom(ctx), id); err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusNoContent}
}
