// Package registry provides a global registry for presentation backends.
// Backends register themselves in init() functions, allowing the command
// line to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/loop"
)

// Backend opens a presentation surface and drives a game loop on it.
// Backends contain no game logic; the loop owns simulation and rendering.
type Backend interface {
	// Name returns a unique identifier used on the command line (e.g., "tui").
	Name() string

	// Description returns a one-line summary for listings.
	Description() string

	// Terminal reports whether the backend draws into the terminal.
	// Terminal backends use a smaller cell size and cannot log to stderr.
	Terminal() bool

	// Run opens the surface, plays until quit, and tears everything down.
	// Failure to open the surface is reported as an *InitError.
	Run(ctx context.Context, cfg loop.Config, logger *log.Logger) error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
	Terminal    bool
}

// Factory is a function that creates a new instance of a backend.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]BackendInfo)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f

	// Get metadata by creating a temporary instance
	b := f()
	infos[name] = BackendInfo{
		Name:        name,
		Description: b.Description(),
		Terminal:    b.Terminal(),
	}
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new backend by its name.
// Returns an error if the name is not registered.
func Create(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return f(), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// InitError reports that a backend could not create its window, renderer
// or screen. The game never started.
type InitError struct {
	Backend string
	Err     error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s: initialization failed: %v", e.Backend, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// NewInitError wraps err as an initialization failure of backend.
func NewInitError(backend string, err error) error {
	return &InitError{Backend: backend, Err: err}
}

// IsInitError reports whether err is, or wraps, an *InitError.
func IsInitError(err error) bool {
	var ie *InitError
	return errors.As(err, &ie)
}
