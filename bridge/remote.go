// SPDX-License-Identifier: MIT
// Package: patternkit/bridge
//
// remote.go — the abstraction hierarchy: Remote and AdvancedRemote.
//
// Design contract (strict):
//   - The remote reaches device behavior ONLY through the Device capability;
//     it must contain no device-specific branches. Substituting another
//     Device variant at runtime requires no remote change.
//   - The device reference is shared, not owned: the remote never destroys
//     or replaces the device it was constructed over.

package bridge

import "errors"

// ErrNilDevice indicates a remote was constructed without a device to drive.
// Usage: if errors.Is(err, bridge.ErrNilDevice) { /* supply a device */ }.
var ErrNilDevice = errors.New("bridge: nil device")

// Remote is the base abstraction: a thin controller over any Device.
type Remote struct {
	device Device
}

// NewRemote returns a remote driving d. The reference is shared; the remote
// does not take ownership. A nil device fails with ErrNilDevice.
// Complexity: O(1) time, O(1) space.
func NewRemote(d Device) (*Remote, error) {
	if d == nil {
		return nil, ErrNilDevice
	}
	return &Remote{device: d}, nil
}

// Device returns the driven device (shared reference).
func (r *Remote) Device() Device { return r.device }

// TogglePower flips the device's power state through the capability.
// Complexity: O(1) time, O(1) space.
func (r *Remote) TogglePower() {
	if r.device.IsEnabled() {
		r.device.Disable()
		return
	}
	r.device.Enable()
}

// volumeStep is the increment used by VolumeUp/VolumeDown.
const volumeStep = 10

// AdvancedRemote extends the abstraction hierarchy with volume control.
// No device variant changes to support it: it only demands the wider
// VolumeDevice capability.
type AdvancedRemote struct {
	Remote

	volumeDevice VolumeDevice
}

// NewAdvancedRemote returns an advanced remote driving d.
// A nil device fails with ErrNilDevice.
func NewAdvancedRemote(d VolumeDevice) (*AdvancedRemote, error) {
	if d == nil {
		return nil, ErrNilDevice
	}
	return &AdvancedRemote{Remote: Remote{device: d}, volumeDevice: d}, nil
}

// Mute drops the volume to MinVolume.
func (r *AdvancedRemote) Mute() {
	r.volumeDevice.SetVolume(MinVolume)
}

// VolumeUp raises the volume by one step (clamped by the device).
func (r *AdvancedRemote) VolumeUp() {
	r.volumeDevice.SetVolume(r.volumeDevice.Volume() + volumeStep)
}

// VolumeDown lowers the volume by one step (clamped by the device).
func (r *AdvancedRemote) VolumeDown() {
	r.volumeDevice.SetVolume(r.volumeDevice.Volume() - volumeStep)
}
