package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notekeeper/app/api/handlers"
	"github.com/ribgsilva/notekeeper/business/v1/label"
	"github.com/ribgsilva/notekeeper/business/v1/note"
	"github.com/ribgsilva/notekeeper/persistence/v1/cache"
	labelstore "github.com/ribgsilva/notekeeper/persistence/v1/label"
	notestore "github.com/ribgsilva/notekeeper/persistence/v1/note"
	"github.com/ribgsilva/notekeeper/persistence/v1/schema"
	"github.com/ribgsilva/notekeeper/platform/env"
	"github.com/ribgsilva/notekeeper/platform/logger"
	"github.com/ribgsilva/notekeeper/platform/resources"
	"github.com/ribgsilva/notekeeper/sys"

	_ "github.com/proullon/ramsql/driver"
)

const ownerHeader = "X-Owner-Id"

type NoteTests struct {
	app   http.Handler
	cache *miniredis.Miniredis
}

func TestNote(t *testing.T) {
	log, err := logger.New("Note-API-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "1s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_TTL", "300s")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// ramsql
	db, err := resources.OpenDatabase("ramsql", "NoteApiTest", sys.Configs.Database.PingTimeout)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = db.Close()
	}()
	sys.R.Database = db

	// redis
	rdb := resources.OpenCache(log, sys.Configs.Cache.ConnectionURL, "", "", sys.Configs.Cache.PingTimeout)
	defer func() {
		_ = rdb.Close()
	}()
	sys.R.Cache = rdb

	// =======================================================================================================
	// Database setup

	if err := schema.Create(context.Background(), db); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	defer schema.Drop(context.Background(), db)

	// =======================================================================================================
	// Setup router
	notes := note.NewCoordinator(
		log,
		notestore.NewStore(db, sys.Configs.Database.OperationTimeout),
		cache.NewRedis(rdb, sys.Configs.Cache.OperationTimeout),
		sys.Configs.Cache.CacheTTL,
	)
	labels := label.New(labelstore.NewStore(db, sys.Configs.Database.OperationTimeout))

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handlers.MapDefaults(engine)
	handlers.MapApi(engine, ownerHeader, notes, labels)

	tests := NoteTests{
		app:   engine,
		cache: s,
	}

	// =======================================================================================================
	// Run tests

	tests.healthcheck200(t)
	tests.missingOwner401(t)

	created := tests.createNote201(t)
	tests.createNote400(t)
	tests.listActive(t, "1", 1)
	if !s.Exists("notes.1.active") {
		t.Fatalf("active notes of owner 1 not in cache")
	}
	tests.getNote200(t, created.Id, "my notes")
	if !s.Exists(fmt.Sprintf("notes.1.%d", created.Id)) {
		t.Fatalf("notes %d not in cache", created.Id)
	}
	tests.getNote200(t, created.Id, "my notes")
	tests.getNote404(t, "2", created.Id)
	tests.updateNote403(t, created.Id)

	tests.updateNote200(t, created.Id)
	tests.getNote200(t, created.Id, "my updated notes")

	tests.toggle(t, created.Id, "trash", func(n note.Note) bool { return n.IsTrash })
	tests.listActive(t, "1", 0)
	trashed := tests.list(t, "/v1/notes/trashed", "1")
	if len(trashed) != 1 || !trashed[0].IsTrash || trashed[0].Title != "my updated notes" {
		t.Fatalf("Test trashed: should have received the trashed note: %v", trashed)
	}

	tests.deleteNote204(t, created.Id)
	tests.getNote404(t, "1", created.Id)
	tests.listActive(t, "1", 0)

	tests.labels(t)
}

func (nt *NoteTests) do(method, path, owner string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, path, &buf)
	r.Header.Set("Content-Type", "application/json")
	if owner != "" {
		r.Header.Set(ownerHeader, owner)
	}
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)
	return w
}

func (nt *NoteTests) healthcheck200(t *testing.T) {
	w := nt.do(http.MethodGet, "/v1/healthcheck", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test healthcheck200: Should receive a status code of 200 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) missingOwner401(t *testing.T) {
	w := nt.do(http.MethodGet, "/v1/notes", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Test missingOwner401: Should receive a status code of 401 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) createNote201(t *testing.T) note.Note {
	reminder := time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC)
	w := nt.do(http.MethodPost, "/v1/notes", "1", note.NewNote{
		Title:       "my notes",
		Description: "my notes text",
		Color:       "yellow",
		Reminder:    &reminder,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Test createNote201: Should receive a status code of 201 for the response : %v %s", w.Code, w.Body.String())
	}
	var resp note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test createNote201: Should be able to unmarshal the response : %v", err)
	}
	if resp.Id == 0 || resp.OwnerId != 1 || resp.Title != "my notes" {
		t.Fatalf("Test createNote201: Should have received the created note: %v", resp)
	}
	return resp
}

func (nt *NoteTests) createNote400(t *testing.T) {
	w := nt.do(http.MethodPost, "/v1/notes", "1", map[string]string{"description": "no title"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test createNote400: Should receive a status code of 400 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) list(t *testing.T, path, owner string) []note.Note {
	w := nt.do(http.MethodGet, path, owner, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test list %s: Should receive a status code of 200 for the response : %v", path, w.Code)
	}
	var resp []note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test list %s: Should be able to unmarshal the response : %v", path, err)
	}
	return resp
}

func (nt *NoteTests) listActive(t *testing.T, owner string, expected int) {
	if got := nt.list(t, "/v1/notes", owner); len(got) != expected {
		t.Fatalf("Test listActive: Should have received %d notes: %v", expected, got)
	}
}

func (nt *NoteTests) getNote200(t *testing.T, id uint64, title string) {
	w := nt.do(http.MethodGet, fmt.Sprintf("/v1/notes/%d", id), "1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test getNote200: Should receive a status code of 200 for the response : %v", w.Code)
	}

	var resp note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test getNote200: Should be able to unmarshal the response : %v", err)
	}
	if resp.Id != id {
		t.Fatalf("Test getNote200: Should have received \"%d\" as id in the response: %v", id, resp)
	}
	if resp.Title != title {
		t.Fatalf("Test getNote200: Should have received %q as title in the response: %v", title, resp)
	}
}

func (nt *NoteTests) getNote404(t *testing.T, owner string, id uint64) {
	w := nt.do(http.MethodGet, fmt.Sprintf("/v1/notes/%d", id), owner, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Test getNote404: Should receive a status code of 404 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) updateNote403(t *testing.T, id uint64) {
	w := nt.do(http.MethodPatch, fmt.Sprintf("/v1/notes/%d", id), "2", map[string]string{"title": "mine now"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("Test updateNote403: Should receive a status code of 403 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) updateNote200(t *testing.T, id uint64) {
	w := nt.do(http.MethodPut, fmt.Sprintf("/v1/notes/%d", id), "1", note.UpdateNote{
		Title: "my updated notes",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Test updateNote200: Should receive a status code of 200 for the response : %v %s", w.Code, w.Body.String())
	}
	var resp note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test updateNote200: Should be able to unmarshal the response : %v", err)
	}
	if resp.Reminder != nil {
		t.Fatalf("Test updateNote200: Should have cleared the reminder: %v", resp)
	}
}

func (nt *NoteTests) toggle(t *testing.T, id uint64, flag string, check func(note.Note) bool) {
	w := nt.do(http.MethodPost, fmt.Sprintf("/v1/notes/%d/%s", id, flag), "1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test toggle %s: Should receive a status code of 200 for the response : %v", flag, w.Code)
	}
	var resp note.Note
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test toggle %s: Should be able to unmarshal the response : %v", flag, err)
	}
	if !check(resp) {
		t.Fatalf("Test toggle %s: Should have flipped the flag: %v", flag, resp)
	}
}

func (nt *NoteTests) deleteNote204(t *testing.T, id uint64) {
	w := nt.do(http.MethodDelete, fmt.Sprintf("/v1/notes/%d", id), "1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Test deleteNote204: Should receive a status code of 204 for the response : %v", w.Code)
	}
	if nt.cache.Exists(fmt.Sprintf("notes.1.%d", id)) {
		t.Fatalf("Test deleteNote204: notes %d should have left the cache", id)
	}
}

func (nt *NoteTests) labels(t *testing.T) {
	w := nt.do(http.MethodPost, "/v1/labels", "1", label.NewLabel{Name: "work"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Test labels: Should receive a status code of 201 for the response : %v", w.Code)
	}
	var created label.Label
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("Test labels: Should be able to unmarshal the response : %v", err)
	}

	w = nt.do(http.MethodPut, fmt.Sprintf("/v1/labels/%d", created.Id), "1", label.NewLabel{Name: "desk"})
	if w.Code != http.StatusOK {
		t.Fatalf("Test labels: Should receive a status code of 200 for the update : %v", w.Code)
	}

	w = nt.do(http.MethodPatch, fmt.Sprintf("/v1/labels/%d", created.Id), "1", map[string]string{"name": "office"})
	if w.Code != http.StatusOK {
		t.Fatalf("Test labels: Should receive a status code of 200 for the patch : %v", w.Code)
	}

	w = nt.do(http.MethodGet, "/v1/labels", "1", nil)
	var list []label.Label
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("Test labels: Should be able to unmarshal the response : %v", err)
	}
	if len(list) != 1 || list[0].Name != "office" {
		t.Fatalf("Test labels: Should have received the renamed label: %v", list)
	}

	if w = nt.do(http.MethodDelete, fmt.Sprintf("/v1/labels/%d", created.Id), "2", nil); w.Code != http.StatusForbidden {
		t.Fatalf("Test labels: Should receive a status code of 403 deleting someone else's label : %v", w.Code)
	}
	if w = nt.do(http.MethodDelete, fmt.Sprintf("/v1/labels/%d", created.Id), "1", nil); w.Code != http.StatusNoContent {
		t.Fatalf("Test labels: Should receive a status code of 204 for the delete : %v", w.Code)
	}
}
