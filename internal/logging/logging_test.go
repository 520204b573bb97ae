package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/gander/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gander.log")

	logger, closer, err := New(config.LogConfig{Path: path, Debug: true})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Debug("stack empty", "screens", 0)
	logger.Info("started")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{"stack empty", "started", Prefix} {
		if !strings.Contains(out, want) {
			t.Errorf("log file missing %q:\n%s", want, out)
		}
	}
}

func TestNewInfoLevelHidesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gander.log")

	logger, closer, err := New(config.LogConfig{Path: path})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Debug("hidden")
	logger.Warn("shown")
	closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("debug line written at info level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn line missing")
	}
}

func TestNewEmptyPathDiscards(t *testing.T) {
	logger, closer, err := New(config.LogConfig{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() = %v, expected nil", err)
	}
}
