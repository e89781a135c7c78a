package handler

import (
	"github.com/gin-gonic/gin"
)

// Result is what every api handler returns, Body is rendered as json unless nil
type Result struct {
	Status int
	Body   any
}

// Error is the body returned on every failure
type Error struct {
	Message string            `json:"message" example:"notes not found"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Wrapper adapts a handler returning a Result into a gin.HandlerFunc
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
