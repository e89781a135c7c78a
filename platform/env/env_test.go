package env

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTEKEEPER_TTL", "")
	if got := DurationDefault(log, "NOTEKEEPER_TTL", "300s"); got != 300*time.Second {
		t.Fatalf("expected default ttl of 300s, got %s", got)
	}

	t.Setenv("NOTEKEEPER_TTL", "1m")
	if got := DurationDefault(log, "NOTEKEEPER_TTL", "300s"); got != time.Minute {
		t.Fatalf("expected ttl of 1m, got %s", got)
	}

	t.Setenv("NOTEKEEPER_WORKERS", "4")
	if got := IntDefault(log, "NOTEKEEPER_WORKERS", "1"); got != 4 {
		t.Fatalf("expected 4 workers, got %d", got)
	}

	t.Setenv("NOTEKEEPER_WORKERS", "four")
	if got := IntDefault(log, "NOTEKEEPER_WORKERS", "1"); got != 1 {
		t.Fatalf("expected the default of 1 worker for a malformed value, got %d", got)
	}

	t.Setenv("NOTEKEEPER_ENABLED", "")
	if got := BoolDefault(log, "NOTEKEEPER_ENABLED", "f"); got {
		t.Fatal("expected disabled by default")
	}

	t.Setenv("NOTEKEEPER_ORIGINS", " http://a.test, ,http://b.test")
	got := ListDefault(log, "NOTEKEEPER_ORIGINS", "*")
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", got)
	}
}
