// Package burger implements the Builder pattern: incremental, chainable
// construction of an immutable Burger value.
//
// The package offers the following key components:
//
//   - Burger: the finished product. Attributes are plain strings; the zero
//     value of an attribute means "unset". Ingredients() reports the set
//     attributes as an ordered sequence in canonical attribute order
//     (buns, patty, cheese, sauce), independent of setter call order.
//   - Builder: wraps an under-construction Burger and exposes one chainable
//     setter per attribute. Each setter mutates the builder in place and
//     returns the same builder reference, enabling fluent composition.
//     Setting the same attribute twice keeps only the last value.
//   - Build: finalizes construction and ends the builder's usable lifetime.
//
// Reuse policy (documented, tested, and deliberate):
//
//	The first Build call returns the finished Burger. Every later Build
//	call fails with ErrAlreadyBuilt, and setters applied after Build are
//	ignored. A finalized builder is spent; construct a new one per product.
//
// Errors:
//
//	ErrAlreadyBuilt - Build called on a builder that already finalized.
package burger
