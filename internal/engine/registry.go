package engine

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory builds an engine from its configuration.
type Factory func(cfg Config) (Engine, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register adds an adapter factory under a name. Adapters register themselves
// from init; registering the same name twice is a programming error.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("engine: adapter %q registered twice", name))
	}
	registry[name] = factory
}

// UnknownEngineError reports a config naming an unregistered adapter.
type UnknownEngineError struct {
	Type      string
	Available []string
}

func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("unknown engine type %q (available: %s); check the engine section of semstudio.yaml",
		e.Type, strings.Join(e.Available, ", "))
}

// List returns registered adapter names, sorted.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open instantiates the adapter named by cfg.Type.
func Open(cfg Config) (Engine, error) {
	registryMu.RLock()
	factory, ok := registry[strings.ToLower(cfg.Type)]
	registryMu.RUnlock()
	if !ok {
		return nil, &UnknownEngineError{Type: cfg.Type, Available: List()}
	}
	return factory(cfg)
}
