// Package storage provides the SQLite-backed content archive.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The archive layout is the SQLite Archive ("sqlar") table, so archives can
// also be inspected with `sqlite3 -A`. Content is stored uncompressed.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned by Get when no entry has the given name.
var ErrNotFound = errors.New("storage: entry not found")

// Archive is an open content archive.
type Archive struct {
	db       *sql.DB
	path     string
	readOnly bool
}

// Entry describes one archived file.
type Entry struct {
	Name    string
	Mode    fs.FileMode
	ModTime time.Time
	Size    int64
}

func expandHome(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}

// Create makes a new, empty archive at path, replacing any existing file.
// Parent directories are created if needed.
func Create(path string) (*Archive, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("storage: cannot replace %s: %w", path, err)
	}

	a, err := open(path, false)
	if err != nil {
		return nil, err
	}
	if err := a.migrate(); err != nil {
		a.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return a, nil
}

// Open opens an existing archive read-only.
func Open(path string) (*Archive, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("storage: cannot open archive: %w", err)
	}

	a, err := open(path, true)
	if err != nil {
		return nil, err
	}
	if !a.hasTable() {
		a.Close()
		return nil, fmt.Errorf("storage: %s is not a content archive", path)
	}
	return a, nil
}

func open(path string, readOnly bool) (*Archive, error) {
	dsn := path
	if readOnly {
		dsn = "file:" + path + "?mode=ro"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	return &Archive{db: db, path: path, readOnly: readOnly}, nil
}

// IsArchive reports whether path is a readable content archive.
func IsArchive(path string) bool {
	a, err := Open(path)
	if err != nil {
		return false
	}
	a.Close()
	return true
}

// migrate creates the archive table if it doesn't exist.
func (a *Archive) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sqlar (
			name TEXT PRIMARY KEY,
			mode INT,
			mtime INT,
			sz INT,
			data BLOB
		);
	`
	_, err := a.db.Exec(schema)
	return err
}

func (a *Archive) hasTable() bool {
	var name string
	err := a.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'sqlar'",
	).Scan(&name)
	return err == nil
}

// Path returns the archive file path.
func (a *Archive) Path() string { return a.path }

// Close closes the database connection.
func (a *Archive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Put stores data under name, replacing an existing entry.
func (a *Archive) Put(name string, data []byte, mode fs.FileMode, modTime time.Time) error {
	if a.readOnly {
		return fmt.Errorf("storage: archive %s is read-only", a.path)
	}
	if data == nil {
		data = []byte{}
	}
	_, err := a.db.Exec(
		"INSERT OR REPLACE INTO sqlar (name, mode, mtime, sz, data) VALUES (?, ?, ?, ?, ?)",
		name, int64(mode), modTime.Unix(), len(data), data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot store %q: %w", name, err)
	}
	return nil
}

// Get returns the content stored under name.
// Returns ErrNotFound if the archive has no such entry.
func (a *Archive) Get(name string) ([]byte, error) {
	var data []byte
	var size int64
	err := a.db.QueryRow(
		"SELECT sz, data FROM sqlar WHERE name = ?",
		name,
	).Scan(&size, &data)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %q: %w", name, err)
	}
	if int64(len(data)) != size {
		return nil, fmt.Errorf("storage: %q is compressed or truncated (%d of %d bytes)", name, len(data), size)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// List returns every entry, sorted by name.
func (a *Archive) List() ([]Entry, error) {
	rows, err := a.db.Query(
		`SELECT name, mode, mtime, sz
		 FROM sqlar
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var mode, mtime int64
		if err := rows.Scan(&e.Name, &mode, &mtime, &e.Size); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Mode = fs.FileMode(mode)
		e.ModTime = time.Unix(mtime, 0)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
