package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notekeeper/business/v1/note"
	"github.com/ribgsilva/notekeeper/platform/web/handler"
	"github.com/ribgsilva/notekeeper/platform/web/middleware"
)

// Create godoc
// @Summary Create a note
// @Tags Note
// @Accept json
// @Produce json
// @Param X-Owner-Id header string true "Owner id"
// @Param note body note.NewNote true "Note"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Router /v1/notes [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return badBody(err)
	}

	created, err := h.Notes.Create(ctx, middleware.OwnerFrom(ctx), newN)
	if err != nil {
		return failure(err)
	}
	return handler.Result{Status: http.StatusCreated, Body: created}
}
