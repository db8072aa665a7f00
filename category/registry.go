// SPDX-License-Identifier: MIT
// Package: catobj/category
//
// registry.go — the process-wide category registry.
//
// Role: give every named category a single canonical identity, so objects
// can persist their category by name and resolve the same value on restore.
// Registration is first-writer-wins; re-registering a name is an error, not
// a replacement, because behavior tables hang off category identity.

package category

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/catobj/names"
)

// ObjectsName is the registry name of the top category of the lattice.
const ObjectsName = "Objects"

var (
	muReg    sync.RWMutex
	registry = make(map[string]*named)
	top      *named
)

// New constructs a category with the given name and options and registers it.
// Returns ErrEmptyCategoryName for an empty name, the names-package
// validation error for a malformed one, and ErrDuplicateCategory when the
// name is taken.
// Complexity: O(len(chain)) for the one-time linearization.
func New(name string, opts ...Option) (Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category: New: %w", ErrEmptyCategoryName)
	}
	// Category names obey the same identifier rules as variable names.
	if err := names.Certify(name); err != nil {
		return nil, fmt.Errorf("category: New: %w", err)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	muReg.Lock()
	defer muReg.Unlock()

	if _, taken := registry[name]; taken {
		return nil, fmt.Errorf("category: New(%q): %w", name, ErrDuplicateCategory)
	}

	cat := &named{
		name:   name,
		supers: cfg.supers,
		table:  cfg.table,
	}
	cat.allSupers = linearize(cfg.supers, objectsLocked())
	registry[name] = cat

	return cat, nil
}

// MustNew is New for static category declarations; it panics on error.
// Intended for package-level var blocks where a bad declaration is a
// programming error.
func MustNew(name string, opts ...Option) Category {
	cat, err := New(name, opts...)
	if err != nil {
		panic(err)
	}

	return cat
}

// Lookup returns the registered category for name, if any.
// Complexity: O(1).
func Lookup(name string) (Category, bool) {
	muReg.RLock()
	defer muReg.RUnlock()

	cat, ok := registry[name]
	if !ok {
		return nil, false
	}

	return cat, true
}

// MustLookup returns the registered category for name or panics.
func MustLookup(name string) Category {
	cat, ok := Lookup(name)
	if !ok {
		panic(fmt.Errorf("category: MustLookup(%q): %w", name, ErrNotRegistered))
	}

	return cat
}

// Objects returns the top category of the lattice: every category is a
// subcategory of Objects, and it contributes no behavior of its own.
// The value is created on first use and survives for the process lifetime
// (Reset re-creates it under the same identity rules).
func Objects() Category {
	muReg.Lock()
	defer muReg.Unlock()

	return objectsLocked()
}

// objectsLocked returns the top category, creating and registering it if
// needed. Callers must hold muReg.
func objectsLocked() *named {
	if top == nil {
		top = &named{name: ObjectsName}
		registry[ObjectsName] = top
	}

	return top
}

// Reset clears the registry, including the top category. Intended for tests
// that declare throwaway categories; production code registers once at init
// and never resets.
func Reset() {
	muReg.Lock()
	defer muReg.Unlock()

	registry = make(map[string]*named)
	top = nil
}

// Registered returns a snapshot of all registered category names, in no
// particular order. Diagnostics only.
func Registered() []string {
	muReg.RLock()
	defer muReg.RUnlock()

	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}

	return out
}
