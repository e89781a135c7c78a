package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ribgsilva/notekeeper/business/v1/note"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// Consume applies the note events received on sub until ctx is done, running at most maxWorkers at once
func Consume(ctx context.Context, log *zap.SugaredLogger, sub *pubsub.Subscription, maxWorkers int, notes *note.Coordinator) error {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			log.Infof("message received: %s", string(m.Body))
			var e note.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				log.Error("failed to parse body: ", err)
				return
			}
			if err := Apply(ctx, notes, e); err != nil {
				log.Errorw("event", "type", e.Type, "owner", e.Owner, "id", e.Id, "ERROR", err)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// Apply runs a single event against notes
func Apply(ctx context.Context, notes *note.Coordinator, e note.Event) error {
	switch e.Type {
	case "create":
		var c note.NewNote
		if err := json.Unmarshal(e.Data, &c); err != nil {
			return fmt.Errorf("parse create data: %w", err)
		}
		_, err := notes.Create(ctx, e.Owner, c)
		return err
	case "update":
		var u note.UpdateNote
		if err := json.Unmarshal(e.Data, &u); err != nil {
			return fmt.Errorf("parse update data: %w", err)
		}
		_, err := notes.Update(ctx, e.Owner, e.Id, u)
		return err
	case "patch":
		var p note.PatchNote
		if err := json.Unmarshal(e.Data, &p); err != nil {
			return fmt.Errorf("parse patch data: %w", err)
		}
		_, err := notes.Patch(ctx, e.Owner, e.Id, p)
		return err
	case "delete":
		return notes.Delete(ctx, e.Owner, e.Id)
	case "archive":
		_, err := notes.ToggleArchive(ctx, e.Owner, e.Id)
		return err
	case "trash":
		_, err := notes.ToggleTrash(ctx, e.Owner, e.Id)
		return err
	default:
		return fmt.Errorf("unknown event type: %s", e.Type)
	}
}
