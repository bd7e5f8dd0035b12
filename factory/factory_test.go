// Package factory_test verifies factory and abstract-factory contracts:
// discriminant-to-variant mapping, the closed-set rejection rule, and
// family coherence of abstract factories.
package factory_test

import (
	"testing"

	"github.com/patternkit/patternkit/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewButton_RecognizedDiscriminants ensures every platform in the closed
// set yields a product tagged with exactly that platform.
func TestNewButton_RecognizedDiscriminants(t *testing.T) {
	for _, p := range factory.Platforms() {
		b, err := factory.NewButton(p, "OK")
		require.NoError(t, err, "NewButton(%q)", p)
		assert.Equal(t, p, b.Platform, "product tag must match discriminant")
		assert.Equal(t, "OK", b.Label)
	}
}

// TestNewCheckbox_RecognizedDiscriminants mirrors the button rule for checkboxes.
func TestNewCheckbox_RecognizedDiscriminants(t *testing.T) {
	for _, p := range factory.Platforms() {
		c, err := factory.NewCheckbox(p, true)
		require.NoError(t, err, "NewCheckbox(%q)", p)
		assert.Equal(t, p, c.Platform, "product tag must match discriminant")
		assert.True(t, c.Checked)
	}
}

// TestFactory_UnknownDiscriminant ensures unknown discriminants fail with the
// sentinel and never fall back to a default variant.
func TestFactory_UnknownDiscriminant(t *testing.T) {
	const bogus = factory.Platform("symbian")

	_, err := factory.NewButton(bogus, "OK")
	assert.ErrorIs(t, err, factory.ErrUnsupportedVariant, "NewButton")

	_, err = factory.NewCheckbox(bogus, false)
	assert.ErrorIs(t, err, factory.ErrUnsupportedVariant, "NewCheckbox")

	_, err = factory.ForPlatform(bogus)
	assert.ErrorIs(t, err, factory.ErrUnsupportedVariant, "ForPlatform")
}

// TestParsePlatform covers the text-to-enum mapping, including rejection.
func TestParsePlatform(t *testing.T) {
	cases := []struct {
		in      string
		want    factory.Platform
		wantErr bool
	}{
		{in: "ios", want: factory.IOS},
		{in: "android", want: factory.Android},
		{in: "IOS", wantErr: true}, // mapping is exact, not case-folded
		{in: "web", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := factory.ParsePlatform(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, factory.ErrUnsupportedVariant, "ParsePlatform(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "ParsePlatform(%q)", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

// TestUIFactory_FamilyCoherence ensures one factory instance never mixes
// platform tags across its products.
func TestUIFactory_FamilyCoherence(t *testing.T) {
	for _, p := range factory.Platforms() {
		f, err := factory.ForPlatform(p)
		require.NoError(t, err, "ForPlatform(%q)", p)

		b := f.CreateButton("Send")
		c := f.CreateCheckbox(false)

		assert.Equal(t, f.Platform(), b.Platform, "button tag must match family")
		assert.Equal(t, f.Platform(), c.Platform, "checkbox tag must match family")
		assert.Equal(t, b.Platform, c.Platform, "products of one family must share a tag")
	}
}

// TestPlatforms_ReturnsCopy ensures callers cannot mutate the closed set.
func TestPlatforms_ReturnsCopy(t *testing.T) {
	first := factory.Platforms()
	first[0] = factory.Platform("mutated")
	assert.Equal(t, []factory.Platform{factory.IOS, factory.Android}, factory.Platforms())
}
