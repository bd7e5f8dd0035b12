// SPDX-License-Identifier: MIT
// Package: patternkit/bridge
//
// device.go — the Device implementation capability and its variants.

package bridge

// Volume bounds for VolumeDevice implementations.
const (
	// MinVolume is the lowest volume level (mute).
	MinVolume = 0

	// MaxVolume is the highest volume level.
	MaxVolume = 100

	// defaultVolume is the level a fresh device starts at.
	defaultVolume = 30
)

// Device is the implementation capability of the bridge: the minimal surface
// a Remote needs to drive any device.
type Device interface {
	// Name reports the device kind (stable, human-readable).
	Name() string

	// IsEnabled reports whether the device is powered on.
	IsEnabled() bool

	// Enable powers the device on. Idempotent.
	Enable()

	// Disable powers the device off. Idempotent.
	Disable()
}

// VolumeDevice extends Device with a volume level clamped to
// [MinVolume, MaxVolume].
type VolumeDevice interface {
	Device

	// Volume reports the current level.
	Volume() int

	// SetVolume sets the level, clamping out-of-range values.
	SetVolume(v int)
}

// clamp confines v to the valid volume range.
func clamp(v int) int {
	if v < MinVolume {
		return MinVolume
	}
	if v > MaxVolume {
		return MaxVolume
	}
	return v
}

// TV is a device variant. It owns only its power flag and volume level.
type TV struct {
	on     bool
	volume int
}

// NewTV returns a powered-off TV at the default volume.
func NewTV() *TV { return &TV{volume: defaultVolume} }

// Name reports "tv".
func (t *TV) Name() string { return "tv" }

// IsEnabled reports the power state.
func (t *TV) IsEnabled() bool { return t.on }

// Enable powers the TV on.
func (t *TV) Enable() { t.on = true }

// Disable powers the TV off.
func (t *TV) Disable() { t.on = false }

// Volume reports the current level.
func (t *TV) Volume() int { return t.volume }

// SetVolume sets the level, clamped to [MinVolume, MaxVolume].
func (t *TV) SetVolume(v int) { t.volume = clamp(v) }

// Radio is a device variant. It owns only its power flag and volume level.
type Radio struct {
	on     bool
	volume int
}

// NewRadio returns a powered-off radio at the default volume.
func NewRadio() *Radio { return &Radio{volume: defaultVolume} }

// Name reports "radio".
func (r *Radio) Name() string { return "radio" }

// IsEnabled reports the power state.
func (r *Radio) IsEnabled() bool { return r.on }

// Enable powers the radio on.
func (r *Radio) Enable() { r.on = true }

// Disable powers the radio off.
func (r *Radio) Disable() { r.on = false }

// Volume reports the current level.
func (r *Radio) Volume() int { return r.volume }

// SetVolume sets the level, clamped to [MinVolume, MaxVolume].
func (r *Radio) SetVolume(v int) { r.volume = clamp(v) }
