package notes

import (
	"context"
	"testing"

	"github.com/ribgsilva/notekeeper/business/v1/note"
)

func TestApplyRejectsBadEvents(t *testing.T) {
	// validation happens before any store access, so no store is needed
	notes := note.NewCoordinator(nil, nil, nil, 0)

	tests := []struct {
		name  string
		event note.Event
	}{
		{"unknown type", note.Event{Type: "rename", Owner: 1}},
		{"malformed data", note.Event{Type: "create", Owner: 1, Data: []byte(`{"title": 1}`)}},
		{"invalid note", note.Event{Type: "create", Owner: 1, Data: []byte(`{"description": "no title"}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Apply(context.Background(), notes, tt.event); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
