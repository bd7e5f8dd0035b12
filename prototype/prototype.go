// SPDX-License-Identifier: MIT
// Package: patternkit/prototype
//
// prototype.go — the Shape capability, shared Base block, and concrete variants.
//
// Copy discipline (strict):
//   - Clone copies the embedded Base first, then the variant's own fields,
//     field by field, so a missing field is visible in review and in tests.
//   - Clone takes no locks and performs no mutation of the receiver.

package prototype

// Shape is the prototype capability: any value that can copy itself into a
// new, independent instance.
//
// The dynamic type of the returned Shape is the variant's own pointer type
// (*Rectangle clones to *Rectangle), so callers may type-assert when they
// need variant-specific fields.
type Shape interface {
	// Clone returns a new instance whose attributes equal the receiver's at
	// call time. Source and clone share no state afterwards.
	Clone() Shape
}

// Base holds the attributes shared by every shape variant. Variants embed it;
// there is no virtual dispatch through it.
type Base struct {
	// X is the horizontal coordinate.
	X float64

	// Y is the vertical coordinate.
	Y float64

	// Color is a free-form color tag ("" = unset).
	Color string
}

// Rectangle is a shape variant with width and height on top of Base.
type Rectangle struct {
	Base

	// Width is the horizontal extent.
	Width float64

	// Height is the vertical extent.
	Height float64
}

// Clone returns an independent copy of the rectangle: inherited attributes
// first, then the rectangle's own. The receiver is not mutated.
// Complexity: O(1) time, O(1) space.
func (r *Rectangle) Clone() Shape {
	return &Rectangle{
		Base:   r.Base, // X, Y, Color
		Width:  r.Width,
		Height: r.Height,
	}
}

// Circle is a shape variant with a radius on top of Base.
type Circle struct {
	Base

	// Radius is the circle radius.
	Radius float64
}

// Clone returns an independent copy of the circle: inherited attributes
// first, then the circle's own. The receiver is not mutated.
// Complexity: O(1) time, O(1) space.
func (c *Circle) Clone() Shape {
	return &Circle{
		Base:   c.Base, // X, Y, Color
		Radius: c.Radius,
	}
}
