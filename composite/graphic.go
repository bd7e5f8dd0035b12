// SPDX-License-Identifier: MIT
// Package: patternkit/composite
//
// graphic.go — the uniform Graphic capability and the leaf variants.

package composite

import "fmt"

// Graphic is the uniform capability over leaves and compounds.
//
// The unexported ownership methods seal the interface to this package's
// variants: ownership transfer and cycle checks need parent bookkeeping that
// arbitrary outside implementations could not honor.
type Graphic interface {
	// Move shifts the graphic by (dx, dy). On a compound this applies to
	// every child in insertion order, recursively.
	Move(dx, dy float64)

	// Draw renders a deterministic one-line descriptor of the graphic.
	// On a compound this concatenates every child's descriptor in
	// insertion order, recursively.
	Draw() string

	// owner reports the current parent (nil = detached root).
	owner() *CompoundGraphic

	// setOwner rebinds the parent pointer. Only Add/Remove call it.
	setOwner(*CompoundGraphic)
}

// node carries the parent pointer every variant embeds.
type node struct {
	parent *CompoundGraphic
}

func (n *node) owner() *CompoundGraphic     { return n.parent }
func (n *node) setOwner(p *CompoundGraphic) { n.parent = p }

// Dot is a leaf graphic: a point at (X, Y).
type Dot struct {
	node

	// X is the horizontal coordinate.
	X float64

	// Y is the vertical coordinate.
	Y float64
}

// NewDot returns a detached dot at (x, y).
func NewDot(x, y float64) *Dot {
	return &Dot{X: x, Y: y}
}

// Move shifts the dot by (dx, dy).
func (d *Dot) Move(dx, dy float64) {
	d.X += dx
	d.Y += dy
}

// Draw renders "dot(x,y)".
func (d *Dot) Draw() string {
	return fmt.Sprintf("dot(%g,%g)", d.X, d.Y)
}

// Circle is a leaf graphic: a circle of Radius centered at (X, Y).
type Circle struct {
	node

	// X is the horizontal center coordinate.
	X float64

	// Y is the vertical center coordinate.
	Y float64

	// Radius is the circle radius.
	Radius float64
}

// NewCircle returns a detached circle of radius r centered at (x, y).
func NewCircle(x, y, r float64) *Circle {
	return &Circle{X: x, Y: y, Radius: r}
}

// Move shifts the circle's center by (dx, dy); the radius is untouched.
func (c *Circle) Move(dx, dy float64) {
	c.X += dx
	c.Y += dy
}

// Draw renders "circle(x,y,r=radius)".
func (c *Circle) Draw() string {
	return fmt.Sprintf("circle(%g,%g,r=%g)", c.X, c.Y, c.Radius)
}
