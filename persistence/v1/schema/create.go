package schema

import (
	"context"
	"database/sql"
	"errors"
)

// Create creates every table used by the service
func Create(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.New("create schema: " + err.Error())
		}
	}

	return nil
}
