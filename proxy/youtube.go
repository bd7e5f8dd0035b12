// SPDX-License-Identifier: MIT
// Package: patternkit/proxy
//
// youtube.go — the concrete video service the proxy fronts.

package proxy

// VideoLister is the capability shared by the real service and its proxy.
type VideoLister interface {
	// List returns the catalog's video titles as an ordered sequence.
	List() ([]string, error)
}

// YouTubeService is a concrete VideoLister over a fixed in-memory catalog.
// It stands in for the remote API; networking is out of scope, so List is
// deterministic and never fails.
type YouTubeService struct {
	videos []string
}

// NewYouTubeService returns a service serving the given catalog in order.
// The catalog is copied; later mutation of the argument has no effect.
func NewYouTubeService(videos ...string) *YouTubeService {
	catalog := make([]string, len(videos))
	copy(catalog, videos)
	return &YouTubeService{videos: catalog}
}

// List returns a fresh copy of the catalog in insertion order.
// Complexity: O(n) time, O(n) space.
func (s *YouTubeService) List() ([]string, error) {
	out := make([]string, len(s.videos))
	copy(out, s.videos)
	return out, nil
}
