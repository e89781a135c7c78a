package notes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notekeeper/business/v1/note"
	"github.com/ribgsilva/notekeeper/platform/validate"
	"github.com/ribgsilva/notekeeper/platform/web/handler"
)

// Handlers serves the note endpoints of the authenticated owner
type Handlers struct {
	Notes *note.Coordinator
}

func noteId(ctx *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	return id, err == nil && id != 0
}

var invalidId = handler.Result{
	Status: http.StatusBadRequest,
	Body:   handler.Error{Message: "invalid id"},
}

func failure(err error) handler.Result {
	var vErr *validate.Error
	switch {
	case errors.As(err, &vErr):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "validation error", Fields: vErr.Fields},
		}
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "notes not found"},
		}
	case errors.Is(err, note.ErrPermissionDenied):
		return handler.Result{
			Status: http.StatusForbidden,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}
}

func badBody(err error) handler.Result {
	return handler.Result{
		Status: http.StatusBadRequest,
		Body:   handler.Error{Message: "invalid body: " + err.Error()},
	}
}
