// Package registry provides a global registry for screen factories.
// Screens register themselves in init() functions, so the driver and the
// console can build them by id without importing each screen package.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gander/internal/stack"
)

// Info contains metadata about a registered screen.
type Info struct {
	ID    string
	Title string
}

type entry struct {
	title   string
	factory stack.Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a screen factory to the registry.
// Typically called from a screen package's init() function.
// Panics if a screen with the same ID is already registered.
func Register(id, title string, f stack.Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: screen %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns information about all registered screens, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for id, e := range entries {
		result = append(result, Info{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Factory returns the factory registered under id.
// Returns an error if the screen ID is not registered.
func Factory(id string) (stack.Factory, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown screen %q", id)
	}
	return e.factory, nil
}

// Exists checks if a screen with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Replace swaps the factory of an already registered screen, keeping its
// title. The driver uses it to install factories built from configuration.
func Replace(id string, f stack.Factory) error {
	mu.Lock()
	defer mu.Unlock()

	e, ok := entries[id]
	if !ok {
		return fmt.Errorf("registry: unknown screen %q", id)
	}
	e.factory = f
	entries[id] = e
	return nil
}
