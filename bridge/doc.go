// Package bridge implements the Bridge pattern: remote controls (the
// abstraction hierarchy) decoupled from the devices they drive (the
// implementation hierarchy).
//
// The package offers the following key components:
//
//   - Device: the implementation capability (power state). VolumeDevice
//     extends it with a clamped volume level.
//   - TV, Radio: device variants. Each owns only its own state; platform
//     side effects of powering real hardware are out of scope, so a device
//     models exactly its on flag and volume.
//   - Remote: the abstraction. It holds a shared Device reference set at
//     construction and reaches all device behavior only through the
//     capability — it re-implements nothing device-specific, which is what
//     lets an implementation be swapped without touching the Remote code.
//   - AdvancedRemote: extends the abstraction hierarchy (mute, volume
//     stepping) without any change to the device variants.
//
// Ownership: the Remote shares the device, it does not own it. A device may
// outlive its remote and may be driven by several remotes at once.
//
// Errors:
//
//	ErrNilDevice - a remote constructed without a device.
package bridge
