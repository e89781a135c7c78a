// Package label manages the labels of an owner. Labels are read straight from the store.
package label

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ribgsilva/notekeeper/persistence/v1/label"
	"github.com/ribgsilva/notekeeper/platform/validate"
)

var (
	ErrNotFound         = errors.New("label not found")
	ErrPermissionDenied = errors.New("you don't have permission to change this label")
)

type Label struct {
	Id        uint64    `json:"id" example:"1"`
	OwnerId   uint64    `json:"owner" example:"1"`
	Name      string    `json:"name" example:"work"`
	UpdatedAt time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type NewLabel struct {
	Name string `json:"name" validate:"required,max=100" example:"work"`
}

type Store interface {
	FindByOwner(ctx context.Context, owner uint64) ([]label.Label, error)
	FindByID(ctx context.Context, id uint64) (label.Label, error)
	Insert(ctx context.Context, l label.NewLabel) (label.Label, error)
	Update(ctx context.Context, l label.Label) (label.Label, error)
	Delete(ctx context.Context, id uint64) error
}

type Labels struct {
	store Store
}

func New(store Store) *Labels {
	return &Labels{store: store}
}

func (s *Labels) List(ctx context.Context, owner uint64) ([]Label, error) {
	found, err := s.store.FindByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("find labels of %d: %w", owner, err)
	}
	labels := make([]Label, 0, len(found))
	for _, f := range found {
		labels = append(labels, Label(f))
	}
	return labels, nil
}

func (s *Labels) Get(ctx context.Context, owner, id uint64) (Label, error) {
	l, err := s.find(ctx, id)
	if err != nil {
		return Label{}, err
	}
	if l.OwnerId != owner {
		return Label{}, ErrNotFound
	}
	return l, nil
}

func (s *Labels) Create(ctx context.Context, owner uint64, newL NewLabel) (Label, error) {
	if err := validate.Check(newL); err != nil {
		return Label{}, err
	}
	created, err := s.store.Insert(ctx, label.NewLabel{OwnerId: owner, Name: newL.Name})
	if err != nil {
		return Label{}, fmt.Errorf("insert label: %w", err)
	}
	return Label(created), nil
}

func (s *Labels) Update(ctx context.Context, owner, id uint64, upd NewLabel) (Label, error) {
	if err := validate.Check(upd); err != nil {
		return Label{}, err
	}
	current, err := s.owned(ctx, owner, id)
	if err != nil {
		return Label{}, err
	}
	current.Name = upd.Name
	updated, err := s.store.Update(ctx, label.Label(current))
	switch {
	case errors.Is(err, label.ErrNotFound):
		return Label{}, ErrNotFound
	case err != nil:
		return Label{}, fmt.Errorf("update label %d: %w", id, err)
	}
	return Label(updated), nil
}

func (s *Labels) Delete(ctx context.Context, owner, id uint64) error {
	if _, err := s.owned(ctx, owner, id); err != nil {
		return err
	}
	err := s.store.Delete(ctx, id)
	switch {
	case errors.Is(err, label.ErrNotFound):
		return ErrNotFound
	case err != nil:
		return fmt.Errorf("delete label %d: %w", id, err)
	}
	return nil
}

func (s *Labels) find(ctx context.Context, id uint64) (Label, error) {
	found, err := s.store.FindByID(ctx, id)
	switch {
	case errors.Is(err, label.ErrNotFound):
		return Label{}, ErrNotFound
	case err != nil:
		return Label{}, fmt.Errorf("find label %d: %w", id, err)
	}
	return Label(found), nil
}

func (s *Labels) owned(ctx context.Context, owner, id uint64) (Label, error) {
	l, err := s.find(ctx, id)
	if err != nil {
		return Label{}, err
	}
	if l.OwnerId != owner {
		return Label{}, ErrPermissionDenied
	}
	return l, nil
}
