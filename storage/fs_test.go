package storage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestFSFetch(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "robot.json"), []byte(`{"id": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewFS(dir)
	ctx := context.Background()

	d, err := l.Fetch(ctx, "robot.json")
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"id": 1}` {
		t.Errorf("Fetch = %q", d)
	}

	// Absolute paths bypass the base.
	d, err = l.Fetch(ctx, filepath.Join(dir, "robot.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"id": 1}` {
		t.Errorf("Fetch(abs) = %q", d)
	}

	if _, err := l.Fetch(ctx, "missing.json"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Fetch(missing) err = %v, want ErrNotFound", err)
	}
}

func TestFSFetchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFS(t.TempDir()).Fetch(ctx, "any"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestFSEntries(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	seq, err := NewFS("").Entries(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a.json", "b.yaml"}
	got := slices.Collect(seq)
	slices.Sort(got)
	if !slices.Equal(got, want) {
		t.Errorf("Entries = %v, want %v", got, want)
	}

	// The sequence is restartable and supports early exit.
	n := 0
	for range seq {
		n++
		break
	}
	if n != 1 {
		t.Errorf("early exit ranged %d entries", n)
	}
	if again := slices.Collect(seq); len(again) != len(want) {
		t.Errorf("second range saw %d entries, want %d", len(again), len(want))
	}

	if _, err := NewFS(dir).Entries(context.Background(), "nodir"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Entries(nodir) err = %v, want ErrNotFound", err)
	}
}

func TestHTTPFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/docs/robot.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"id": 2}`))
	}))
	defer srv.Close()

	l := NewHTTP(srv.URL + "/docs/")
	ctx := context.Background()

	d, err := l.Fetch(ctx, "robot.json")
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"id": 2}` {
		t.Errorf("Fetch = %q", d)
	}

	if _, err := l.Fetch(ctx, "missing.json"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Fetch(missing) err = %v, want ErrNotFound", err)
	}
	if _, err := l.Entries(ctx, ""); !errors.Is(err, ErrNotSupported) {
		t.Errorf("Entries err = %v, want ErrNotSupported", err)
	}
}
