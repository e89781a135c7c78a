package healthcheck

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notekeeper/platform/web/handler"
	"github.com/ribgsilva/notekeeper/sys"
)

type Status struct {
	Database string `json:"database" example:"up"`
	Cache    string `json:"cache" example:"up"`
}

// Get godoc
// @Summary Health check
// @Description Reports the database and cache connectivity, a down cache does not fail the check
// @Tags Health
// @Produce json
// @Success 200 {object} Status
// @Failure 503 {object} Status
// @Router /v1/healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	s := Status{Database: "up", Cache: "up"}
	status := http.StatusOK

	if db := sys.R.Database; db != nil {
		dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := db.PingContext(dbCtx); err != nil {
			s.Database = "down"
			status = http.StatusServiceUnavailable
		}
	}
	if rdb := sys.R.Cache; rdb != nil {
		rdsCtx, rdsCancel := context.WithTimeout(ctx, sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			s.Cache = "down"
		}
	}

	return handler.Result{Status: status, Body: s}
}
