// Package supply provides tile value suppliers for match3 boards and a
// registry of named supplier factories. Suppliers register themselves in
// init() so the CLI can pick one by name from configuration.
package supply

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/match3/internal/match3"
)

// Tiles is the supplier type used by sessions: symbols are short strings.
type Tiles = match3.Supplier[string]

// Factory creates a supplier drawing from the given symbols.
// The seed makes sequences reproducible for suppliers that use one.
type Factory func(symbols []string, seed int64) (Tiles, error)

// Info contains metadata about a registered supplier.
type Info struct {
	Name        string
	Description string
}

type entry struct {
	factory     Factory
	description string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a supplier factory to the registry.
// Panics if a supplier with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("supply: supplier %q already registered", name))
	}

	entries[name] = entry{factory: f, description: description}
}

// List returns all registered suppliers, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for name, e := range entries {
		result = append(result, Info{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a supplier by name.
// Returns an error if the name is unknown or the symbols are unusable.
func Create(name string, symbols []string, seed int64) (Tiles, error) {
	mu.RLock()
	e, ok := entries[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("supply: unknown supplier %q", name)
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("supply: supplier %q needs at least one symbol", name)
	}

	return e.factory(symbols, seed)
}

// Exists checks if a supplier with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}
