package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// SheetInfo contains display information about a registered sheet.
type SheetInfo struct {
	Key     string   // Unique identifier: "clusters"
	Sheet   string   // Sheet (tab) name in the container
	Label   string   // Display name: "Clusters"
	Columns []string // Canonical field names in declaration order
}

// Operations is the untyped CRUD surface over one registered sheet,
// used by callers that discover sheets at runtime (the CLI). Field maps
// carry profile-encoded string values keyed by canonical field name.
type Operations struct {
	GetAll func(ctx context.Context) ([]map[string]string, error)
	Add    func(ctx context.Context, fields map[string]string) (string, error)
	Update func(ctx context.Context, id string, fields map[string]string) (bool, error)
	Delete func(ctx context.Context, id string) (bool, error)
}

// SheetDefinition contains everything needed to serve a sheet.
type SheetDefinition struct {
	Info SheetInfo

	// Bind attaches the definition to a gateway, producing ready-to-use
	// operations.
	Bind func(gw Gateway, opts ...Option) Operations
}

var (
	registry   = make(map[string]SheetDefinition)
	registryMu sync.RWMutex
)

// Register adds a sheet definition to the registry.
// Panics if a definition with the same key is already registered.
func Register(def SheetDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Info.Key]; exists {
		panic(fmt.Sprintf("sheet already registered: %s", def.Info.Key))
	}

	registry[def.Info.Key] = def
}

// Get returns a sheet definition by key.
// Returns false if not found.
func Get(key string) (SheetDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// All returns all registered sheet definitions, sorted by key for
// consistent ordering.
func All() []SheetDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]SheetDefinition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}
