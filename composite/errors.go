// SPDX-License-Identifier: MIT
// Package: patternkit/composite
//
// errors.go — sentinel errors for tree mutation.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Mutation either succeeds completely or leaves the tree untouched;
//     a rejected Add never half-attaches a child.

package composite

import "errors"

// ErrNilGraphic indicates Add or Remove was given a nil child.
// Usage: if errors.Is(err, composite.ErrNilGraphic) { /* programmer error */ }.
var ErrNilGraphic = errors.New("composite: nil graphic")

// ErrCyclicComposition indicates an Add that would make a node its own
// descendant (directly or transitively). The check runs on every Add.
// Usage: if errors.Is(err, composite.ErrCyclicComposition) { /* restructure tree */ }.
var ErrCyclicComposition = errors.New("composite: cyclic composition")

// ErrAlreadyAttached indicates the child already belongs to a parent.
// Ownership is exclusive: Remove it from its current parent first.
// Usage: if errors.Is(err, composite.ErrAlreadyAttached) { /* detach first */ }.
var ErrAlreadyAttached = errors.New("composite: graphic already attached")

// ErrChildNotFound indicates Remove of a graphic that is not a direct child
// of this compound.
// Usage: if errors.Is(err, composite.ErrChildNotFound) { /* wrong parent */ }.
var ErrChildNotFound = errors.New("composite: child not found")
