// SPDX-License-Identifier: MIT
// Package: patternkit/composite
//
// compound.go — CompoundGraphic: the recursive container variant.
//
// Design contract (strict):
//   - Children are an ordered, exclusively owned collection; insertion order
//     is the traversal order for Move and Draw.
//   - Every Add runs the ancestor walk before mutating anything, so a
//     rejected attach leaves both the tree and the child untouched.

package composite

import (
	"fmt"
	"strings"
)

// CompoundGraphic is the composite variant: an ordered, mutable collection
// of child graphics driven through the uniform capability.
//
// Single-goroutine by contract (no internal locking); a compound's child
// list is owned exclusively by that compound.
type CompoundGraphic struct {
	node

	children []Graphic
}

// NewCompound returns a compound holding the given children in order.
// It fails with the same sentinels as Add if any child is unattachable.
// Construction is all-or-nothing: on failure, children attached before the
// failing one are released again, so they stay attachable elsewhere.
// Complexity: O(n · h) where h is the tree height (per-child ancestor walk).
func NewCompound(children ...Graphic) (*CompoundGraphic, error) {
	c := &CompoundGraphic{}
	for i, child := range children {
		if err := c.Add(child); err != nil {
			// Roll back: the caller gets no handle to the compound, so any
			// ownership it took would strand those children for good.
			for _, attached := range c.children {
				attached.setOwner(nil)
			}
			return nil, fmt.Errorf("NewCompound: child %d: %w", i, err)
		}
	}
	return c, nil
}

// Add appends child to the end of the collection and takes ownership.
//
// Rejections (checked in this order, nothing mutated on failure):
//   - nil child                                  → ErrNilGraphic
//   - attach would make a node its own ancestor  → ErrCyclicComposition
//   - child already belongs to a parent          → ErrAlreadyAttached
//
// The cycle check walks this compound's ancestor chain on every Add: if the
// candidate child appears there (or is this compound itself), the attach
// would close a cycle.
// Complexity: O(h) time where h is this compound's depth, O(1) space.
func (c *CompoundGraphic) Add(child Graphic) error {
	if child == nil {
		return ErrNilGraphic
	}

	// Ancestor walk: c, c's parent, ... root. Hitting the candidate child
	// means the child's subtree already contains this compound.
	for ancestor := Graphic(c); ancestor != nil; {
		if ancestor == child {
			return ErrCyclicComposition
		}
		parent := ancestor.owner()
		if parent == nil {
			break
		}
		ancestor = parent
	}

	if child.owner() != nil {
		return ErrAlreadyAttached
	}

	child.setOwner(c)
	c.children = append(c.children, child)
	return nil
}

// Remove detaches child from the collection and releases ownership, so the
// child can be attached elsewhere afterwards. Order of the remaining
// children is preserved.
//
// Fails with ErrNilGraphic for a nil child and ErrChildNotFound when the
// graphic is not a direct child of this compound.
// Complexity: O(n) time, O(1) space.
func (c *CompoundGraphic) Remove(child Graphic) error {
	if child == nil {
		return ErrNilGraphic
	}
	for i, got := range c.children {
		if got == child {
			last := len(c.children) - 1
			copy(c.children[i:], c.children[i+1:])
			c.children[last] = nil // release the trailing slot for GC
			c.children = c.children[:last]
			child.setOwner(nil)
			return nil
		}
	}
	return ErrChildNotFound
}

// Move shifts every child by (dx, dy) in insertion order, recursively.
// An empty compound is a no-op.
// Complexity: O(n) over the subtree.
func (c *CompoundGraphic) Move(dx, dy float64) {
	for _, child := range c.children {
		child.Move(dx, dy)
	}
}

// Draw renders "group(...)" over every child's descriptor in insertion
// order, recursively. An empty compound renders "group()".
// Complexity: O(n) over the subtree.
func (c *CompoundGraphic) Draw() string {
	parts := make([]string, len(c.children))
	for i, child := range c.children {
		parts[i] = child.Draw()
	}
	return "group(" + strings.Join(parts, ", ") + ")"
}

// Len reports the number of direct children.
func (c *CompoundGraphic) Len() int { return len(c.children) }

// Children returns a snapshot of the direct children in insertion order.
// The slice is a fresh copy; mutating it never touches the tree.
// Complexity: O(n) time, O(n) space.
func (c *CompoundGraphic) Children() []Graphic {
	snapshot := make([]Graphic, len(c.children))
	copy(snapshot, c.children)
	return snapshot
}
