// Package registry owns the world's dynamic entities. Archetypes register
// factories in init() functions so world files can name what to spawn
// without hardcoded constructors; the NPC and object managers own every
// entity spawned and answer collision and proximity queries about them.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/entity"
)

// Params carries the world-file settings an archetype may use.
// Zero values select the archetype's defaults.
type Params struct {
	Position    core.Point
	Lines       []string
	Variant     string
	PatrolWidth float64
	Speed       float64
	Radius      float64
	// MinX and MaxX limit horizontal movement; MaxX <= MinX means unlimited.
	MinX, MaxX float64
}

// ArchetypeInfo contains metadata about a registered archetype.
type ArchetypeInfo struct {
	ID    string
	Title string
}

// Factory builds a new entity from world-file parameters.
type Factory func(p Params) (entity.Dynamic, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an archetype factory to the registry.
// Typically called from an init() function.
// Panics if an archetype with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: archetype %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered archetypes, sorted by ID.
func List() []ArchetypeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ArchetypeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ArchetypeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a new entity of the given archetype.
// Returns an error if the archetype is not registered or rejects p.
func Create(id string, p Params) (entity.Dynamic, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown archetype %q", id)
	}

	e, err := f(p)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return e, nil
}

// Exists checks if an archetype with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
