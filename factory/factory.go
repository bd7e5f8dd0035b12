// SPDX-License-Identifier: MIT
// Package: patternkit/factory
//
// factory.go — factory methods and the abstract-factory families.
//
// Design contract (strict):
//   - Every selection point is an exhaustive switch over the closed Platform
//     set; the default branch returns ErrUnsupportedVariant, never a product.
//   - A concrete family stamps its own platform tag on every product, so a
//     single call site can never mix variants.

package factory

import "fmt"

// NewButton constructs a button for the given platform discriminant.
//
// The caller never names a concrete variant; the discriminant alone selects
// it. Unknown discriminants fail with ErrUnsupportedVariant.
// Complexity: O(1) time, O(1) space.
func NewButton(p Platform, label string) (Button, error) {
	switch p {
	case IOS, Android:
		return Button{Platform: p, Label: label}, nil
	default:
		return Button{}, fmt.Errorf("NewButton(%q): %w", p, ErrUnsupportedVariant)
	}
}

// NewCheckbox constructs a checkbox for the given platform discriminant.
// Unknown discriminants fail with ErrUnsupportedVariant.
// Complexity: O(1) time, O(1) space.
func NewCheckbox(p Platform, checked bool) (Checkbox, error) {
	switch p {
	case IOS, Android:
		return Checkbox{Platform: p, Checked: checked}, nil
	default:
		return Checkbox{}, fmt.Errorf("NewCheckbox(%q): %w", p, ErrUnsupportedVariant)
	}
}

// UIFactory is the abstract-factory capability: a family of related creation
// methods whose products are always mutually compatible.
//
// Invariant: for any UIFactory f, every product of f carries f.Platform().
type UIFactory interface {
	// CreateButton constructs a button belonging to this family.
	CreateButton(label string) Button

	// CreateCheckbox constructs a checkbox belonging to this family.
	CreateCheckbox(checked bool) Checkbox

	// Platform reports the family's platform tag.
	Platform() Platform
}

// ForPlatform resolves a discriminant to its concrete factory family.
// Unknown discriminants fail with ErrUnsupportedVariant.
// Complexity: O(1) time, O(1) space.
func ForPlatform(p Platform) (UIFactory, error) {
	switch p {
	case IOS:
		return IOSUIFactory{}, nil
	case Android:
		return AndroidUIFactory{}, nil
	default:
		return nil, fmt.Errorf("ForPlatform(%q): %w", p, ErrUnsupportedVariant)
	}
}

// IOSUIFactory produces the iOS product family. The zero value is ready to use.
type IOSUIFactory struct{}

// CreateButton returns an iOS-tagged button.
func (IOSUIFactory) CreateButton(label string) Button {
	return Button{Platform: IOS, Label: label}
}

// CreateCheckbox returns an iOS-tagged checkbox.
func (IOSUIFactory) CreateCheckbox(checked bool) Checkbox {
	return Checkbox{Platform: IOS, Checked: checked}
}

// Platform reports IOS.
func (IOSUIFactory) Platform() Platform { return IOS }

// AndroidUIFactory produces the Android product family. The zero value is ready to use.
type AndroidUIFactory struct{}

// CreateButton returns an Android-tagged button.
func (AndroidUIFactory) CreateButton(label string) Button {
	return Button{Platform: Android, Label: label}
}

// CreateCheckbox returns an Android-tagged checkbox.
func (AndroidUIFactory) CreateCheckbox(checked bool) Checkbox {
	return Checkbox{Platform: Android, Checked: checked}
}

// Platform reports Android.
func (AndroidUIFactory) Platform() Platform { return Android }
