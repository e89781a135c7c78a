package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notekeeper/platform/web/handler"
)

const ownerKey = "notekeeper.owner"

// Owner reads the authenticated owner id from the given header, which is set by the authenticating gateway.
// Requests without a valid id are rejected with 401.
func Owner(header string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		owner, err := strconv.ParseUint(ctx.GetHeader(header), 10, 64)
		if err != nil || owner == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: "missing or invalid owner"})
			return
		}
		ctx.Set(ownerKey, owner)
		ctx.Next()
	}
}

// OwnerFrom returns the owner stored by Owner
func OwnerFrom(ctx *gin.Context) uint64 {
	v, _ := ctx.Get(ownerKey)
	owner, _ := v.(uint64)
	return owner
}
