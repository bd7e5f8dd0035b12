// Package proxy implements the (caching) Proxy pattern: a stand-in that
// exposes the same listing capability as the service it wraps and guards it
// with an at-most-once delegation guarantee.
//
// The package offers the following key components:
//
//   - VideoLister: the shared capability — List returns an ordered sequence
//     of video titles.
//   - YouTubeService: a concrete lister over an in-memory catalog
//     (deterministic order; no network, by scope).
//   - CacheProxy: wraps any VideoLister. The first List delegates and fills
//     the cache slot; every later List serves the slot without touching the
//     service again — at most one delegation per proxy lifetime, until an
//     explicit Invalidate.
//
// Guarantees:
//
//   - Isolation: sequences are copied at the cache boundary in both
//     directions, so a caller mutating a returned slice can never reach the
//     service's data or the cached slot.
//   - A failed delegation is not cached: the error passes through and the
//     next List tries the service again.
//
// Errors:
//
//	ErrNilService - proxy constructed without a service to wrap.
package proxy
