// Package patternkit is a contract-first catalog of creational and structural
// design patterns, each implemented as a small, self-contained, testable Go
// package.
//
// 🚀 What is patternkit?
//
//	A modern, zero-dependency library that brings together:
//		• Factory & Abstract Factory: closed platform variants, coherent UI families
//		• Builder: fluent, single-shot burger construction
//		• Prototype: self-copying shapes with a clone registry
//		• Singleton: lazy, race-safe process-wide database handle
//		• Adapter: square pegs in round holes via derived radii
//		• Bridge: remotes decoupled from the devices they drive
//		• Composite: recursive graphic trees with cycle-safe ownership
//		• Proxy: at-most-once caching in front of a video service
//
// ✨ Why choose patternkit?
//
//   - Contract-first – every operation documents its invariants and errors
//   - Rock-solid guarantees – sentinel errors, errors.Is branching, no silent defaults
//   - Pure Go – no cgo, no hidden deps
//   - Test-anchored – every documented property is pinned by a unit test
//
// Each pattern lives in its own flat subpackage:
//
//	factory/   — Factory method + Abstract Factory (Platform, Button, Checkbox)
//	burger/    — Builder (fluent chain, documented single-Build policy)
//	prototype/ — Prototype (Shape capability, Rectangle, Circle, Registry)
//	singleton/ — Singleton (Database, exactly-once lazy construction)
//	adapter/   — Adapter (RoundHole, SquarePegAdapter)
//	bridge/    — Bridge (Remote / AdvancedRemote over Device variants)
//	composite/ — Composite (Graphic trees, ownership + cycle rejection)
//	proxy/     — Proxy (CacheProxy over a VideoLister)
//
// Runnable demos live under examples/, one scenario per pattern.
//
// All packages are pure, synchronous value transformations; the only
// concurrency-sensitive point in the library is singleton initialization,
// which is guarded by sync.Once and verified under concurrent first access.
package patternkit
