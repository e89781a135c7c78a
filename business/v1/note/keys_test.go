package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeysAreOwnerScoped(t *testing.T) {
	seen := make(map[string]string)
	add := func(key, what string) {
		if prev, ok := seen[key]; ok {
			t.Fatalf("key %s derived for both %s and %s", key, prev, what)
		}
		seen[key] = what
	}
	for _, owner := range []uint64{1, 2, 11, 12, 112} {
		for _, v := range views {
			add(v.key(owner), "list "+string(v))
		}
		for _, id := range []uint64{1, 2, 12} {
			add(keyOf(owner, id), "note")
		}
	}

	assert.Equal(t, "notes.1.active", activeView.key(1))
	assert.Equal(t, "notes.1.12", keyOf(1, 12))
	assert.NotEqual(t, keyOf(11, 2), keyOf(1, 12))
}

func TestViewPatch(t *testing.T) {
	list := []Note{{Id: 1, Title: "a"}, {Id: 3, Title: "c"}, {Id: 3, Title: "c dup"}, {Id: 5, Title: "e"}}

	t.Run("insert keeps id order", func(t *testing.T) {
		out := activeView.patch(list, Note{Id: 4, Title: "d"})
		assert.Equal(t, []string{"a", "c", "d", "e"}, titles(out))
	})
	t.Run("replace collapses duplicates", func(t *testing.T) {
		out := activeView.patch(list, Note{Id: 3, Title: "c2"})
		assert.Equal(t, []string{"a", "c2", "e"}, titles(out))
	})
	t.Run("duplicates of other ids collapse", func(t *testing.T) {
		out := activeView.patch(list, Note{Id: 1, Title: "a2"})
		assert.Equal(t, []string{"a2", "c", "e"}, titles(out))
	})
	t.Run("remove when no longer a member", func(t *testing.T) {
		out := activeView.patch(list, Note{Id: 3, IsTrash: true})
		assert.Equal(t, []string{"a", "e"}, titles(out))
	})
	t.Run("append at end", func(t *testing.T) {
		out := trashedView.patch(nil, Note{Id: 9, Title: "z", IsTrash: true, IsArchive: true})
		assert.Equal(t, []string{"z"}, titles(out))
	})
	t.Run("input is not mutated", func(t *testing.T) {
		_ = activeView.patch(list, Note{Id: 1, IsArchive: true})
		assert.Equal(t, "a", list[0].Title)
		assert.Len(t, list, 4)
	})
}
