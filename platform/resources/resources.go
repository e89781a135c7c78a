// Package resources opens the process wide database and cache clients.
package resources

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// OpenDatabase opens a sql pool with driver and checks it answers within pingTimeout
func OpenDatabase(driver, url string, pingTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}
	dbCtx, dbCancel := context.WithTimeout(context.Background(), pingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return db, nil
}

// OpenCache creates a redis client. An unreachable redis is only logged:
// the cache is an optimization and callers fall back to the database.
func OpenCache(log *zap.SugaredLogger, addr, user, pass string, pingTimeout time.Duration) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: user,
		Password: pass,
	})
	rdsCtx, rdsCancel := context.WithTimeout(context.Background(), pingTimeout)
	defer rdsCancel()
	if err := rdb.Ping(rdsCtx).Err(); err != nil {
		log.Warnw("startup", "status", "redis unreachable, serving from database", "ERROR", err)
	}
	return rdb
}
