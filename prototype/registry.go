// SPDX-License-Identifier: MIT
// Package: patternkit/prototype
//
// registry.go — a name-to-prototype catalog that hands out clones only.

package prototype

import (
	"errors"
	"fmt"
)

// ErrUnknownPrototype indicates Registry.Get was asked for a name that was
// never registered.
// Usage: if errors.Is(err, prototype.ErrUnknownPrototype) { /* register first */ }.
var ErrUnknownPrototype = errors.New("prototype: unknown prototype")

// Registry catalogs prototypes by name and stamps out independent clones.
//
// The stored prototype itself is never handed out: Get clones on every call,
// so neither callers nor the registry can corrupt each other's state.
// Single-goroutine by contract (no internal locking).
type Registry struct {
	prototypes map[string]Shape
}

// NewRegistry returns an empty prototype registry.
// Complexity: O(1) time, O(1) space.
func NewRegistry() *Registry {
	return &Registry{prototypes: make(map[string]Shape)}
}

// Put registers (or replaces) the prototype stored under name.
//
// The registry keeps a clone of proto, not proto itself, so later mutation
// of the caller's value cannot drift the catalog.
// Complexity: O(1) time, O(1) space.
func (r *Registry) Put(name string, proto Shape) {
	r.prototypes[name] = proto.Clone()
}

// Get returns a fresh clone of the prototype stored under name.
// Every call yields a new independent instance.
// Complexity: O(1) time, O(1) space.
func (r *Registry) Get(name string) (Shape, error) {
	proto, ok := r.prototypes[name]
	if !ok {
		return nil, fmt.Errorf("Get(%q): %w", name, ErrUnknownPrototype)
	}
	return proto.Clone(), nil
}

// Names returns the registered prototype names (unordered copy).
// Complexity: O(n) time, O(n) space.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.prototypes))
	for name := range r.prototypes {
		names = append(names, name)
	}
	return names
}
