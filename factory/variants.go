// SPDX-License-Identifier: MIT
// Package: patternkit/factory
//
// variants.go — the closed Platform enumeration and the product value objects.

package factory

import "fmt"

// Platform is the discriminant a factory uses to select a product family.
// The set of valid values is closed; see Platforms.
type Platform string

// Recognized platform discriminants.
const (
	// IOS selects the iOS product family.
	IOS Platform = "ios"

	// Android selects the Android product family.
	Android Platform = "android"
)

// Platforms returns the closed set of recognized platforms in stable order.
// The returned slice is a fresh copy; callers may mutate it freely.
// Complexity: O(1) time, O(1) space.
func Platforms() []Platform {
	return []Platform{IOS, Android}
}

// ParsePlatform maps raw text onto the closed Platform set.
// Unknown text fails with ErrUnsupportedVariant; there is no default.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case IOS:
		return IOS, nil
	case Android:
		return Android, nil
	default:
		return "", fmt.Errorf("ParsePlatform(%q): %w", s, ErrUnsupportedVariant)
	}
}

// Button is a platform-tagged button value object.
//
// Platform records which family produced the button; Label is its caption.
// Buttons are plain values: copying one never shares state.
type Button struct {
	// Platform is the tag of the producing family.
	Platform Platform

	// Label is the button caption.
	Label string
}

// Render returns a deterministic one-line descriptor of the button.
// No UI toolkit is involved; the descriptor exists so family coherence
// is observable in tests and demos.
func (b Button) Render() string {
	return fmt.Sprintf("[%s] button %q", b.Platform, b.Label)
}

// Checkbox is a platform-tagged checkbox value object.
type Checkbox struct {
	// Platform is the tag of the producing family.
	Platform Platform

	// Checked is the initial checked state.
	Checked bool
}

// Render returns a deterministic one-line descriptor of the checkbox.
func (c Checkbox) Render() string {
	state := "unchecked"
	if c.Checked {
		state = "checked"
	}
	return fmt.Sprintf("[%s] checkbox (%s)", c.Platform, state)
}
