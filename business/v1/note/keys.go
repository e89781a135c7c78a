package note

import (
	"fmt"

	"github.com/ribgsilva/notekeeper/persistence/v1/note"
)

const (
	noteKey = "notes.%d.%d"
	listKey = "notes.%d.%s"
)

// view is a named, owner scoped list of notes
type view string

const (
	activeView   view = "active"
	archivedView view = "archived"
	trashedView  view = "trashed"
)

var views = []view{activeView, archivedView, trashedView}

func keyOf(owner, id uint64) string {
	return fmt.Sprintf(noteKey, owner, id)
}

func (v view) key(owner uint64) string {
	return fmt.Sprintf(listKey, owner, v)
}

// contains reports whether n is listed in v
func (v view) contains(n Note) bool {
	switch v {
	case activeView:
		return !n.IsArchive && !n.IsTrash
	case archivedView:
		return n.IsArchive && !n.IsTrash
	case trashedView:
		return n.IsTrash
	}
	return false
}

func (v view) filter() note.Filter {
	yes, no := true, false
	switch v {
	case archivedView:
		return note.Filter{IsArchive: &yes, IsTrash: &no}
	case trashedView:
		return note.Filter{IsTrash: &yes}
	default:
		return note.Filter{IsArchive: &no, IsTrash: &no}
	}
}

// patch returns list with n placed according to its membership in v.
// A listed n replaces the entry with the same id, or is inserted keeping id order;
// an unlisted n is removed. Only the first entry of each id is kept. The scan is O(len(list)).
func (v view) patch(list []Note, n Note) []Note {
	member := v.contains(n)
	out := make([]Note, 0, len(list)+1)
	seen := make(map[uint64]struct{}, len(list)+1)
	placed := false
	for _, e := range list {
		if member && !placed && e.Id >= n.Id {
			out = append(out, n)
			seen[n.Id] = struct{}{}
			placed = true
		}
		if e.Id == n.Id {
			continue
		}
		if _, dup := seen[e.Id]; dup {
			continue
		}
		seen[e.Id] = struct{}{}
		out = append(out, e)
	}
	if member && !placed {
		out = append(out, n)
	}
	return out
}
