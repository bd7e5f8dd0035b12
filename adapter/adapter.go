// SPDX-License-Identifier: MIT
// Package: patternkit/adapter
//
// adapter.go — round pegs, round holes, square pegs, and the adapter
// between them.

package adapter

import "math"

// Peg is the target capability: a peg that can report its effective radius.
type Peg interface {
	// Radius reports the peg's effective radius.
	Radius() float64
}

// RoundPeg is the native Peg implementation.
type RoundPeg struct {
	radius float64
}

// NewRoundPeg returns a round peg with the given radius.
func NewRoundPeg(radius float64) *RoundPeg {
	return &RoundPeg{radius: radius}
}

// Radius reports the peg's radius.
func (p *RoundPeg) Radius() float64 { return p.radius }

// RoundHole accepts pegs by radius.
type RoundHole struct {
	radius float64
}

// NewRoundHole returns a round hole with the given radius.
func NewRoundHole(radius float64) *RoundHole {
	return &RoundHole{radius: radius}
}

// Radius reports the hole's radius.
func (h *RoundHole) Radius() float64 { return h.radius }

// Fits reports whether the peg passes through the hole:
// true iff the hole's radius is at least the peg's effective radius
// (boundary inclusive).
// Complexity: O(1) time, O(1) space.
func (h *RoundHole) Fits(p Peg) bool {
	return h.radius >= p.Radius()
}

// SquarePeg is a shape with no native radius; it cannot satisfy Peg on its own.
type SquarePeg struct {
	// Width is the side length of the square cross-section.
	Width float64
}

// NewSquarePeg returns a square peg with the given side width.
func NewSquarePeg(width float64) *SquarePeg {
	return &SquarePeg{Width: width}
}

// SquarePegAdapter exposes a *SquarePeg through the Peg capability.
//
// The effective radius is the radius of the smallest circle circumscribing
// the square cross-section: width * √2 / 2 (half the diagonal). The adapter
// holds a reference, never a copy, and never mutates the wrapped peg.
type SquarePegAdapter struct {
	peg *SquarePeg
}

// NewSquarePegAdapter wraps peg in the Peg capability.
// Panics on nil: an adapter without a subject is a programmer error.
func NewSquarePegAdapter(peg *SquarePeg) *SquarePegAdapter {
	if peg == nil {
		panic("adapter: NewSquarePegAdapter(nil)")
	}
	return &SquarePegAdapter{peg: peg}
}

// Radius derives the effective radius from the wrapped peg's current width.
// Pure: same width in, same radius out; the wrapped peg is read, never written.
// Complexity: O(1) time, O(1) space.
func (a *SquarePegAdapter) Radius() float64 {
	return a.peg.Width * math.Sqrt2 / 2
}
