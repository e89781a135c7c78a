package label_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/ribgsilva/notekeeper/persistence/v1/label"
	"github.com/ribgsilva/notekeeper/persistence/v1/schema"

	_ "github.com/proullon/ramsql/driver"
)

func TestStore(t *testing.T) {
	db, err := sql.Open("ramsql", "LabelStoreTest")
	if err != nil {
		t.Fatalf("error to connect to database: %s", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := schema.Create(context.Background(), db); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	defer schema.Drop(context.Background(), db)

	s := label.NewStore(db, 5*time.Second)
	ctx := context.Background()

	work, err := s.Insert(ctx, label.NewLabel{OwnerId: 1, Name: "work"})
	if err != nil {
		t.Fatalf("insert: %s", err)
	}
	if _, err := s.Insert(ctx, label.NewLabel{OwnerId: 2, Name: "home"}); err != nil {
		t.Fatalf("insert: %s", err)
	}

	labels, err := s.FindByOwner(ctx, 1)
	if err != nil {
		t.Fatalf("find by owner: %s", err)
	}
	if len(labels) != 1 || labels[0].Name != "work" {
		t.Fatalf("expected only the label of owner 1, got %+v", labels)
	}

	work.Name = "office"
	updated, err := s.Update(ctx, work)
	if err != nil {
		t.Fatalf("update: %s", err)
	}
	if updated.Name != "office" {
		t.Fatalf("expected renamed label, got %+v", updated)
	}

	if err := s.Delete(ctx, work.Id); err != nil {
		t.Fatalf("delete: %s", err)
	}
	if _, err := s.FindByID(ctx, work.Id); !errors.Is(err, label.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
