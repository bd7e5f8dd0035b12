// SPDX-License-Identifier: MIT
// Package: patternkit/factory
//
// errors.go — sentinel errors for the factory package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach the offending discriminant via %w wrapping;
//     sentinels themselves stay parameter-free.

package factory

import "errors"

// ErrUnsupportedVariant indicates that a discriminant is not part of the
// closed Platform enumeration. There is deliberately no default variant:
// an unknown platform is a caller error, not a fallback case.
// Usage: if errors.Is(err, factory.ErrUnsupportedVariant) { /* reject input */ }.
var ErrUnsupportedVariant = errors.New("factory: unsupported variant")
