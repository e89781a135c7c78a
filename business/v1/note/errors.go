package note

import "errors"

var (
	// ErrNotFound is returned when the note does not exist or belongs to another owner
	ErrNotFound = errors.New("note not found")
	// ErrPermissionDenied is returned when a mutation targets a note of another owner
	ErrPermissionDenied = errors.New("you don't have permission to change this note")
)
