// SPDX-License-Identifier: MIT
// Package: patternkit/proxy
//
// proxy.go — CacheProxy and its functional options.
//
// Design contract (strict):
//   - The proxy implements exactly the wrapped capability; callers written
//     against VideoLister cannot tell proxy from service.
//   - The cache slot is filled by at most one successful delegation per
//     proxy lifetime; only Invalidate re-arms it.
//   - Copies at the boundary: nothing a caller holds aliases the slot, and
//     the slot never aliases what the service returned.

package proxy

import (
	"errors"
	"fmt"
)

// ErrNilService indicates a proxy was constructed without a service to wrap.
// Usage: if errors.Is(err, proxy.ErrNilService) { /* supply a service */ }.
var ErrNilService = errors.New("proxy: nil service")

// Option customizes a CacheProxy before first use.
type Option func(*CacheProxy)

// WithPrefilled seeds the cache slot so the first List serves the cache
// without delegating. The slice is copied.
func WithPrefilled(videos []string) Option {
	return func(p *CacheProxy) {
		p.cachedVideos = make([]string, len(videos))
		copy(p.cachedVideos, videos)
		p.filled = true
	}
}

// CacheProxy fronts a VideoLister with a single-slot result cache.
//
// Single-goroutine by contract (no internal locking); wrap access in your
// own synchronization if you share one proxy across goroutines.
type CacheProxy struct {
	service      VideoLister
	cachedVideos []string
	filled       bool
}

// New returns a proxy wrapping service. A nil service fails with
// ErrNilService. Options apply in order.
// Complexity: O(len(opts)) time.
func New(service VideoLister, opts ...Option) (*CacheProxy, error) {
	if service == nil {
		return nil, ErrNilService
	}
	p := &CacheProxy{service: service}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// List returns the video titles, delegating to the wrapped service only
// when the cache slot is empty.
//
// First call (or first after Invalidate): delegates, stores a copy of the
// result, returns another copy. Later calls: return a copy of the slot
// without delegating. A delegation error passes through unwrapped in
// content but with call-site context, and leaves the slot empty so the
// next List retries.
// Complexity: O(n) time/space per call (boundary copies).
func (p *CacheProxy) List() ([]string, error) {
	if !p.filled {
		videos, err := p.service.List()
		if err != nil {
			return nil, fmt.Errorf("List: fill cache: %w", err)
		}
		p.cachedVideos = make([]string, len(videos))
		copy(p.cachedVideos, videos)
		p.filled = true
	}

	out := make([]string, len(p.cachedVideos))
	copy(out, p.cachedVideos)
	return out, nil
}

// Cached reports whether the slot currently holds a result.
func (p *CacheProxy) Cached() bool { return p.filled }

// Invalidate clears the cache slot; the next List delegates again.
// Complexity: O(1) time.
func (p *CacheProxy) Invalidate() {
	p.cachedVideos = nil
	p.filled = false
}
