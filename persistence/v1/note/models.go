package note

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no row matches the requested id
var ErrNotFound = errors.New("note not found")

const columns = "id, owner_id, title, description, color, image, reminder, is_archive, is_trash, updated_at, created_at"

type Note struct {
	Id          uint64
	OwnerId     uint64
	Title       string
	Description string
	Color       string
	Image       string
	Reminder    *time.Time
	IsArchive   bool
	IsTrash     bool
	UpdatedAt   time.Time
	CreatedAt   time.Time
}

type NewNote struct {
	OwnerId     uint64
	Title       string
	Description string
	Color       string
	Image       string
	Reminder    *time.Time
	IsArchive   bool
	IsTrash     bool
}

// Filter restricts an owner query on the lifecycle flags, nil means any value
type Filter struct {
	IsArchive *bool
	IsTrash   *bool
}
