// Package resource loads named resources from the filesystem, falling back
// to the content archive built by cmd/pack.
package resource

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gander/internal/storage"
)

// DefaultArchive is the archive name looked up when none is configured.
const DefaultArchive = "data"

// Loader resolves resource names. A loose file under Root wins over an
// archive entry with the same base name.
type Loader struct {
	root    string
	archive string
	logger  *log.Logger

	ar *storage.Archive
}

// NewLoader creates a loader reading loose files relative to root and the
// archive at archivePath. An empty archivePath disables the fallback.
// A nil logger discards diagnostics.
func NewLoader(root, archivePath string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{root: root, archive: archivePath, logger: logger}
}

// Load returns the content of name, or an empty slice when neither the
// filesystem nor the archive has it. Failures are logged, never returned.
func (l *Loader) Load(name string) []byte {
	l.logger.Debug("attempting to load resource", "name", name)

	path := name
	if l.root != "" && !filepath.IsAbs(name) {
		path = filepath.Join(l.root, name)
	}
	data, err := os.ReadFile(path)
	if err == nil {
		l.logger.Debug("loaded resource", "name", name, "bytes", len(data))
		return data
	}

	if data, ok := l.fromArchive(name); ok {
		return data
	}

	l.logger.Warn("failed to load resource", "name", name)
	return []byte{}
}

func (l *Loader) fromArchive(name string) ([]byte, bool) {
	if l.archive == "" {
		return nil, false
	}
	l.logger.Debug("attempting to load resource from archive", "name", name, "archive", l.archive)

	if l.ar == nil {
		if !storage.IsArchive(l.archive) {
			return nil, false
		}
		ar, err := storage.Open(l.archive)
		if err != nil {
			l.logger.Warn("cannot open archive", "archive", l.archive, "error", err)
			return nil, false
		}
		l.ar = ar
	}

	data, err := l.ar.Get(filepath.Base(name))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			l.logger.Warn("archive read failed", "name", name, "error", err)
		}
		return nil, false
	}
	l.logger.Debug("loaded resource from archive", "name", name, "bytes", len(data))
	return data, true
}

// Close releases the archive if it was opened.
func (l *Loader) Close() error {
	if l.ar == nil {
		return nil
	}
	err := l.ar.Close()
	l.ar = nil
	return err
}
