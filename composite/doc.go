// Package composite implements the Composite pattern: a recursive tree of
// graphics sharing one uniform capability, with strict ownership and cycle
// rejection on every attach.
//
// The package offers the following key components:
//
//   - Graphic: the uniform capability — Move(dx, dy) and Draw() — over leaf
//     and composite variants alike. The interface is sealed to this
//     package's variants (Dot, Circle, CompoundGraphic), making the variant
//     set closed and the ownership bookkeeping enforceable.
//   - Dot, Circle: leaves. Draw renders a deterministic one-line descriptor
//     (no pixels, no UI), so traversal order is directly observable.
//   - CompoundGraphic: an ordered, mutable collection of children. Move and
//     Draw apply to every child in insertion order, recursively. An empty
//     compound is a no-op, not an error.
//
// Ownership and cycle rules (checked on every Add):
//
//   - A graphic belongs to at most one parent at a time. Attaching a child
//     that already has a parent fails with ErrAlreadyAttached; Remove
//     releases ownership so the child can be re-attached elsewhere.
//   - Adding a node as its own descendant — itself, directly, or through
//     any chain of compounds — fails with ErrCyclicComposition. Trees stay
//     trees; no cycle is ever observable.
//
// Errors:
//
//	ErrNilGraphic        - Add/Remove given a nil child.
//	ErrCyclicComposition - attach would make a node its own descendant.
//	ErrAlreadyAttached   - child already belongs to a parent.
//	ErrChildNotFound     - Remove of a child not in this compound.
package composite
