package note

import (
	"database/sql"
	"time"
)

// Store reads and writes notes on a sql database
type Store struct {
	db      *sql.DB
	timeout time.Duration
	now     func() time.Time
}

// NewStore creates a Store bounding every statement by timeout
func NewStore(db *sql.DB, timeout time.Duration) *Store {
	return &Store{
		db:      db,
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (Note, error) {
	var n Note
	var description, color, image sql.NullString
	var reminder sql.NullTime
	if err := row.Scan(&n.Id, &n.OwnerId, &n.Title, &description, &color, &image, &reminder, &n.IsArchive, &n.IsTrash, &n.UpdatedAt, &n.CreatedAt); err != nil {
		return Note{}, err
	}
	n.Description = description.String
	n.Color = color.String
	n.Image = image.String
	if reminder.Valid {
		r := reminder.Time
		n.Reminder = &r
	}
	return n, nil
}

// flag binds a bool as the 0/1 stored in the TINYINT flag columns
func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
