// Package factory implements the Factory-method and Abstract-Factory
// patterns over a closed set of UI platforms.
//
// The package offers the following key components:
//
//   - Platform: a closed enumeration of supported platforms (IOS, Android).
//     Selection is always an exhaustive switch, so adding a platform is a
//     compile-time-checked change, never a silent default.
//   - Value objects: Button and Checkbox, each carrying the platform tag of
//     the family that produced it plus its own payload.
//   - Factory methods: NewButton / NewCheckbox construct a single product
//     from a discriminant.
//   - UIFactory: the abstract-factory capability. One factory instance
//     yields a coherent family — every product it creates carries the same
//     platform tag (all-iOS or all-Android, never mixed).
//   - ForPlatform: resolves a discriminant to the matching concrete family.
//
// Guarantees:
//
//   - Unknown discriminants fail with ErrUnsupportedVariant; there is no
//     fallback variant.
//   - Family coherence: for any UIFactory f, f.CreateButton(...).Platform ==
//     f.CreateCheckbox(...).Platform == f.Platform().
//   - Determinism: products are plain value objects; Render output depends
//     only on the product's fields.
//
// Errors:
//
//	ErrUnsupportedVariant - discriminant is not in the closed Platform set.
package factory
