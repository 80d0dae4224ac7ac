package groups

import (
	"fmt"
	"slices"
	"sync"

	"nathanbeddoewebdev/pkgsort/internal/keysort"
	"nathanbeddoewebdev/pkgsort/internal/util"
)

// Built-in sort method names.
const (
	MethodAlphabetical = "alphabetical"
	MethodContributors = "contributors"
	MethodNone         = "none"
)

var (
	mu       sync.RWMutex
	registry = builtins()
)

func builtins() map[string]keysort.SortMethod {
	return map[string]keysort.SortMethod{
		MethodAlphabetical: keysort.Alphabetical,
		MethodContributors: keysort.SortContributors,
		MethodNone:         nil,
	}
}

// RegisterMethod makes a sort method available to group files under name.
func RegisterMethod(name string, method keysort.SortMethod) {
	normalizedName := util.NormalizeKey(name)
	if normalizedName == "" {
		panic("groups: empty method name")
	}
	if method == nil {
		panic("groups: nil sort method")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[normalizedName]; exists {
		panic(fmt.Sprintf("groups: sort method %q already registered", name))
	}
	registry[normalizedName] = method
}

// LookupMethod resolves a method name. An empty name resolves to no method.
func LookupMethod(name string) (keysort.SortMethod, error) {
	normalizedName := util.NormalizeKey(name)
	if normalizedName == "" {
		return nil, nil
	}

	mu.RLock()
	method, ok := registry[normalizedName]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("groups: unknown sort method %q (valid: %v)", name, MethodNames())
	}
	return method, nil
}

// MethodNames returns the registered method names in sorted order.
func MethodNames() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ResetMethods restores the registry to the built-in methods. Intended for
// use in tests only.
func ResetMethods() {
	mu.Lock()
	defer mu.Unlock()
	registry = builtins()
}
