package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notekeeper/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notekeeper/app/api/handlers/v1/labels"
	"github.com/ribgsilva/notekeeper/app/api/handlers/v1/notes"
	"github.com/ribgsilva/notekeeper/business/v1/label"
	"github.com/ribgsilva/notekeeper/business/v1/note"
	"github.com/ribgsilva/notekeeper/platform/web/handler"
	"github.com/ribgsilva/notekeeper/platform/web/middleware"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

// MapApi maps the owner scoped endpoints, the owner is read from ownerHeader
func MapApi(r *gin.Engine, ownerHeader string, n *note.Coordinator, l *label.Labels) {
	nh := notes.Handlers{Notes: n}
	lh := labels.Handlers{Labels: l}

	v1 := r.Group("/v1", middleware.Owner(ownerHeader))

	v1.GET("/notes", handler.Wrapper(nh.List))
	v1.POST("/notes", handler.Wrapper(nh.Create))
	v1.GET("/notes/archived", handler.Wrapper(nh.ListArchived))
	v1.GET("/notes/trashed", handler.Wrapper(nh.ListTrashed))
	v1.GET("/notes/:id", handler.Wrapper(nh.Get))
	v1.PUT("/notes/:id", handler.Wrapper(nh.Update))
	v1.PATCH("/notes/:id", handler.Wrapper(nh.Patch))
	v1.DELETE("/notes/:id", handler.Wrapper(nh.Delete))
	v1.POST("/notes/:id/archive", handler.Wrapper(nh.Archive))
	v1.POST("/notes/:id/trash", handler.Wrapper(nh.Trash))

	v1.GET("/labels", handler.Wrapper(lh.List))
	v1.POST("/labels", handler.Wrapper(lh.Create))
	v1.GET("/labels/:id", handler.Wrapper(lh.Get))
	v1.PUT("/labels/:id", handler.Wrapper(lh.Update))
	v1.PATCH("/labels/:id", handler.Wrapper(lh.Update))
	v1.DELETE("/labels/:id", handler.Wrapper(lh.Delete))
}
