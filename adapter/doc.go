// Package adapter implements the Adapter pattern: fitting square pegs into
// round holes by translating one shape's state into the capability another
// expects.
//
// The package offers the following key components:
//
//   - Peg: the target capability — anything that can report a radius.
//   - RoundPeg: the native implementation of Peg.
//   - RoundHole: accepts any Peg; Fits(p) holds iff hole radius >= p.Radius().
//   - SquarePeg: an incompatible shape exposing only a width.
//   - SquarePegAdapter: wraps a *SquarePeg and exposes Peg by deriving the
//     radius of the smallest circumscribing circle: width * √2 / 2.
//
// Guarantees:
//
//   - The derivation is a pure function of the wrapped peg's current state;
//     no hidden side effects, no caching.
//   - The adapter never mutates the wrapped peg; it tracks the peg's width
//     if the caller changes it.
package adapter
