package resource

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gander/internal/storage"
)

func writeArchive(t *testing.T, path string, files map[string]string) {
	t.Helper()
	a, err := storage.Create(path)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	defer a.Close()
	for name, content := range files {
		if err := a.Put(name, []byte(content), 0o644, time.Now()); err != nil {
			t.Fatalf("Put(%s) failed: %v", name, err)
		}
	}
}

func TestLoadPrefersLooseFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "res"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "res", "ground.txt"), []byte("loose"), 0o644); err != nil {
		t.Fatal(err)
	}
	archive := filepath.Join(dir, "data")
	writeArchive(t, archive, map[string]string{"ground.txt": "packed"})

	l := NewLoader(dir, archive, nil)
	defer l.Close()

	if got := string(l.Load("res/ground.txt")); got != "loose" {
		t.Errorf("Load() = %q, expected %q", got, "loose")
	}
}

func TestLoadFallsBackToArchiveByBaseName(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "data")
	writeArchive(t, archive, map[string]string{"ground.txt": "packed"})

	l := NewLoader(dir, archive, nil)
	defer l.Close()

	if got := string(l.Load("res/ground.txt")); got != "packed" {
		t.Errorf("Load() = %q, expected %q", got, "packed")
	}
	// Second lookup reuses the open archive.
	if got := string(l.Load("other/ground.txt")); got != "packed" {
		t.Errorf("Load() = %q, expected %q", got, "packed")
	}
}

func TestLoadMissingLogsWarning(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	logger := log.New(&buf)

	l := NewLoader(dir, filepath.Join(dir, "data"), logger)
	defer l.Close()

	got := l.Load("res/missing.txt")
	if got == nil || len(got) != 0 {
		t.Errorf("Load() = %v, expected an empty slice", got)
	}
	if !strings.Contains(buf.String(), "failed to load resource") {
		t.Errorf("log = %q, expected a warning", buf.String())
	}
}

func TestLoadWithoutArchive(t *testing.T) {
	l := NewLoader(t.TempDir(), "", nil)
	if got := l.Load("nothing"); len(got) != 0 {
		t.Errorf("Load() = %q, expected empty", got)
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
