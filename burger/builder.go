// SPDX-License-Identifier: MIT
// Package: patternkit/burger
//
// builder.go — the fluent Builder and its single-Build finalization policy.
//
// Design contract (strict):
//   - Setters mutate the builder in place and return the same *Builder, so
//     chains read fluently without hidden copies.
//   - Last write wins: independent setters commute, repeated setters overwrite.
//   - Build finalizes exactly once; later Build calls return ErrAlreadyBuilt
//     and setters on a spent builder are no-ops.

package burger

import "errors"

// ErrAlreadyBuilt indicates Build was called on a builder that already
// finalized its product. A builder's usable lifetime ends at the first Build.
// Usage: if errors.Is(err, burger.ErrAlreadyBuilt) { /* construct a new builder */ }.
var ErrAlreadyBuilt = errors.New("burger: builder already built")

// Builder assembles a Burger incrementally.
//
// The zero value is NOT ready; construct with New. All methods are
// single-goroutine by contract (no internal locking).
type Builder struct {
	product Burger
	built   bool
}

// New returns a fresh Builder with every attribute unset.
// Complexity: O(1) time, O(1) space.
func New() *Builder {
	return &Builder{}
}

// Buns sets the bun variety and returns the same builder for chaining.
// Repeated calls overwrite; calls after Build are ignored.
func (b *Builder) Buns(v string) *Builder {
	if !b.built {
		b.product.Buns = v
	}
	return b
}

// Patty sets the patty variety and returns the same builder for chaining.
// Repeated calls overwrite; calls after Build are ignored.
func (b *Builder) Patty(v string) *Builder {
	if !b.built {
		b.product.Patty = v
	}
	return b
}

// Cheese sets the cheese variety and returns the same builder for chaining.
// Repeated calls overwrite; calls after Build are ignored.
func (b *Builder) Cheese(v string) *Builder {
	if !b.built {
		b.product.Cheese = v
	}
	return b
}

// Sauce sets the sauce variety and returns the same builder for chaining.
// Repeated calls overwrite; calls after Build are ignored.
func (b *Builder) Sauce(v string) *Builder {
	if !b.built {
		b.product.Sauce = v
	}
	return b
}

// Build finalizes construction and returns the finished Burger.
//
// Attributes never set retain their zero value. The first call succeeds and
// spends the builder; every later call fails with ErrAlreadyBuilt (see the
// package documentation for the reuse policy).
// Complexity: O(1) time, O(1) space.
func (b *Builder) Build() (Burger, error) {
	if b.built {
		return Burger{}, ErrAlreadyBuilt
	}
	b.built = true
	return b.product, nil
}
