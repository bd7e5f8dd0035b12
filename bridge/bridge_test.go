// Package bridge_test verifies that the remote drives devices only through
// the capability: toggling works identically across variants, substitution
// needs no remote change, and the advanced remote extends the abstraction
// without touching the implementations.
package bridge_test

import (
	"testing"

	"github.com/patternkit/patternkit/bridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRemote_TogglePower ensures toggling flips device power state through
// the capability, for every device variant with no per-variant code.
func TestRemote_TogglePower(t *testing.T) {
	devices := []bridge.Device{bridge.NewTV(), bridge.NewRadio()}

	for _, d := range devices {
		remote, err := bridge.NewRemote(d)
		require.NoError(t, err, "NewRemote(%s)", d.Name())

		assert.False(t, d.IsEnabled(), "%s starts powered off", d.Name())
		remote.TogglePower()
		assert.True(t, d.IsEnabled(), "%s on after first toggle", d.Name())
		remote.TogglePower()
		assert.False(t, d.IsEnabled(), "%s off after second toggle", d.Name())
	}
}

// TestRemote_SubstituteImplementation pins the bridge property: the same
// remote code drives a second implementation variant substituted at runtime.
func TestRemote_SubstituteImplementation(t *testing.T) {
	// driveThrough stands in for caller code written once against *Remote.
	driveThrough := func(r *bridge.Remote) {
		r.TogglePower()
	}

	tv := bridge.NewTV()
	radio := bridge.NewRadio()

	forTV, err := bridge.NewRemote(tv)
	require.NoError(t, err)
	forRadio, err := bridge.NewRemote(radio)
	require.NoError(t, err)

	driveThrough(forTV)
	driveThrough(forRadio)

	assert.True(t, tv.IsEnabled())
	assert.True(t, radio.IsEnabled())
}

// TestRemote_SharedNotOwned ensures several remotes may drive one device and
// the device's state is the single source of truth.
func TestRemote_SharedNotOwned(t *testing.T) {
	tv := bridge.NewTV()

	first, err := bridge.NewRemote(tv)
	require.NoError(t, err)
	second, err := bridge.NewRemote(tv)
	require.NoError(t, err)

	first.TogglePower()
	assert.True(t, tv.IsEnabled())

	// The second remote observes and flips the same shared state.
	second.TogglePower()
	assert.False(t, tv.IsEnabled())
	assert.Same(t, first.Device(), second.Device())
}

// TestNewRemote_NilDevice ensures construction without a device fails with
// the sentinel.
func TestNewRemote_NilDevice(t *testing.T) {
	_, err := bridge.NewRemote(nil)
	assert.ErrorIs(t, err, bridge.ErrNilDevice)

	_, err = bridge.NewAdvancedRemote(nil)
	assert.ErrorIs(t, err, bridge.ErrNilDevice)
}

// TestAdvancedRemote_Volume covers the extended abstraction: mute, stepping,
// and clamping at both bounds — for both device variants.
func TestAdvancedRemote_Volume(t *testing.T) {
	devices := []bridge.VolumeDevice{bridge.NewTV(), bridge.NewRadio()}

	for _, d := range devices {
		remote, err := bridge.NewAdvancedRemote(d)
		require.NoError(t, err, "NewAdvancedRemote(%s)", d.Name())

		start := d.Volume()
		remote.VolumeUp()
		assert.Equal(t, start+10, d.Volume(), "%s volume up", d.Name())
		remote.VolumeDown()
		assert.Equal(t, start, d.Volume(), "%s volume down", d.Name())

		remote.Mute()
		assert.Equal(t, bridge.MinVolume, d.Volume(), "%s muted", d.Name())

		// Clamp at the floor.
		remote.VolumeDown()
		assert.Equal(t, bridge.MinVolume, d.Volume(), "%s stays at floor", d.Name())

		// Clamp at the ceiling.
		d.SetVolume(bridge.MaxVolume - 5)
		remote.VolumeUp()
		assert.Equal(t, bridge.MaxVolume, d.Volume(), "%s clamped at ceiling", d.Name())

		// The extended remote still toggles power like the base abstraction.
		remote.TogglePower()
		assert.True(t, d.IsEnabled(), "%s powered by advanced remote", d.Name())
	}
}
