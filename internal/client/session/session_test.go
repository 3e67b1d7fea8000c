package session

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestFileStore_EmptyWhenAbsent(t *testing.T) {
	store := newTestStore(t)
	if got := store.Token(); got != "" {
		t.Errorf("expected empty token, got %q", got)
	}
}

func TestFileStore_SetGetClear(t *testing.T) {
	store := newTestStore(t)

	if err := store.SetToken("tok-1"); err != nil {
		t.Fatalf("SetToken returned error: %v", err)
	}
	if got := store.Token(); got != "tok-1" {
		t.Errorf("Token = %q; want %q", got, "tok-1")
	}

	// Last write wins.
	if err := store.SetToken("tok-2"); err != nil {
		t.Fatalf("SetToken returned error: %v", err)
	}
	if got := store.Token(); got != "tok-2" {
		t.Errorf("Token = %q; want %q", got, "tok-2")
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if got := store.Token(); got != "" {
		t.Errorf("expected empty token after clear, got %q", got)
	}

	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear returned error: %v", err)
	}
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	if err := NewFileStore(path).SetToken("tok-1"); err != nil {
		t.Fatalf("SetToken returned error: %v", err)
	}

	// A fresh store over the same file sees the token.
	if got := NewFileStore(path).Token(); got != "tok-1" {
		t.Errorf("Token = %q; want %q", got, "tok-1")
	}
}

func TestFileStore_UnreadableFileMeansAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if got := NewFileStore(path).Token(); got != "" {
		t.Errorf("expected empty token for a corrupt file, got %q", got)
	}
}

func TestGuard_TracksLoginLogoutSequences(t *testing.T) {
	store := newTestStore(t)
	guard := Guard{Tokens: store}

	if guard.IsAuthorized() {
		t.Fatal("expected unauthorized before any login")
	}

	// The predicate must hold across arbitrary login/logout sequences.
	steps := []struct {
		login bool
		want  bool
	}{
		{login: true, want: true},
		{login: false, want: false},
		{login: true, want: true},
		{login: true, want: true},
		{login: false, want: false},
		{login: false, want: false},
	}
	for i, step := range steps {
		if step.login {
			if err := store.SetToken("tok"); err != nil {
				t.Fatalf("step %d: SetToken: %v", i, err)
			}
		} else {
			if err := store.Clear(); err != nil {
				t.Fatalf("step %d: Clear: %v", i, err)
			}
		}
		if got := guard.IsAuthorized(); got != step.want {
			t.Errorf("step %d: IsAuthorized = %v; want %v", i, got, step.want)
		}
	}
}
