package note

import (
	"encoding/json"
	"time"
)

// Note is the projection returned to callers and stored in cache
type Note struct {
	Id          uint64     `json:"id" example:"1"`
	OwnerId     uint64     `json:"owner" example:"1"`
	Title       string     `json:"title" example:"my note"`
	Description string     `json:"description" example:"my note text"`
	Color       string     `json:"color" example:"yellow"`
	Image       string     `json:"image" example:"images/cat.png"`
	Reminder    *time.Time `json:"reminder" example:"2006-01-02T15:04:05Z"`
	IsArchive   bool       `json:"is_archive" example:"false"`
	IsTrash     bool       `json:"is_trash" example:"false"`
	UpdatedAt   time.Time  `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
	CreatedAt   time.Time  `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type NewNote struct {
	Title       string     `json:"title" validate:"required,max=200" example:"my note"`
	Description string     `json:"description" example:"my note text"`
	Color       string     `json:"color" validate:"max=50" example:"yellow"`
	Image       string     `json:"image" validate:"max=255" example:"images/cat.png"`
	Reminder    *time.Time `json:"reminder" example:"2006-01-02T15:04:05Z"`
	IsArchive   bool       `json:"is_archive"`
	IsTrash     bool       `json:"is_trash"`
}

// UpdateNote replaces every mutable field of a note
type UpdateNote NewNote

// PatchNote changes only the fields that are set
type PatchNote struct {
	Title       *string      `json:"title" validate:"omitempty,min=1,max=200" example:"my note"`
	Description *string      `json:"description" example:"my note text"`
	Color       *string      `json:"color" validate:"omitempty,max=50" example:"yellow"`
	Image       *string      `json:"image" validate:"omitempty,max=255" example:"images/cat.png"`
	Reminder    NullableTime `json:"reminder" swaggertype:"string" example:"2006-01-02T15:04:05Z"`
	IsArchive   *bool        `json:"is_archive"`
	IsTrash     *bool        `json:"is_trash"`
}

// NullableTime tells an absent field from an explicit null, which clears the value
type NullableTime struct {
	Set   bool
	Value *time.Time
}

func (t *NullableTime) UnmarshalJSON(data []byte) error {
	t.Set = true
	if string(data) == "null" {
		t.Value = nil
		return nil
	}
	var v time.Time
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	t.Value = &v
	return nil
}

func (t NullableTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Value)
}

// Event is a note operation received through messaging
type Event struct {
	Type  string          `json:"type"`
	Owner uint64          `json:"owner"`
	Id    uint64          `json:"id,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func (p PatchNote) apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Description != nil {
		n.Description = *p.Description
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
	if p.Image != nil {
		n.Image = *p.Image
	}
	if p.Reminder.Set {
		n.Reminder = nil
		if p.Reminder.Value != nil {
			r := *p.Reminder.Value
			n.Reminder = &r
		}
	}
	if p.IsArchive != nil {
		n.IsArchive = *p.IsArchive
	}
	if p.IsTrash != nil {
		n.IsTrash = *p.IsTrash
	}
}

func (u UpdateNote) apply(n *Note) {
	n.Title = u.Title
	n.Description = u.Description
	n.Color = u.Color
	n.Image = u.Image
	n.Reminder = u.Reminder
	n.IsArchive = u.IsArchive
	n.IsTrash = u.IsTrash
}
