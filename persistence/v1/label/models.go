package label

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no row matches the requested id
var ErrNotFound = errors.New("label not found")

type Label struct {
	Id        uint64
	OwnerId   uint64
	Name      string
	UpdatedAt time.Time
	CreatedAt time.Time
}

type NewLabel struct {
	OwnerId uint64
	Name    string
}
