// Package prototype implements the Prototype pattern: self-copying shape
// values plus a registry that stamps out independent clones by name.
//
// The package offers the following key components:
//
//   - Shape: the prototype capability. Every variant can produce a new,
//     independent copy of itself via Clone.
//   - Base: the attribute set shared by every variant (X, Y, Color). It is
//     embedded by concrete variants rather than inherited, so each variant
//     holds only its own fields on top of the common block.
//   - Rectangle, Circle: concrete variants. Each Clone copies the inherited
//     attributes first, then the variant's own — omitting a field during
//     copy is a defect this package's tests exist to catch.
//   - Registry: a name-to-prototype catalog. Get always returns a clone,
//     never the stored prototype, so callers cannot corrupt the catalog.
//
// Guarantees:
//
//   - Fidelity: a clone's attributes equal the source's at the moment of
//     cloning, across every declared field.
//   - Independence: mutating a clone never touches the source, and vice
//     versa; no state is shared between the two.
//   - Clone never mutates the source.
//
// Errors:
//
//	ErrUnknownPrototype - Registry.Get for a name never registered.
package prototype
