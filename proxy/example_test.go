package proxy_test

import (
	"fmt"

	"github.com/patternkit/patternkit/proxy"
)

// ExampleCacheProxy demonstrates the stand-in: same capability as the
// service, with the second List served from the cache.
func ExampleCacheProxy() {
	service := proxy.NewYouTubeService("intro", "deep-dive")
	cached, err := proxy.New(service)
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}

	videos, _ := cached.List() // delegates and fills the slot
	fmt.Println(videos)
	videos, _ = cached.List() // served from the slot
	fmt.Println(videos, "cached:", cached.Cached())

	// Output:
	// [intro deep-dive]
	// [intro deep-dive] cached: true
}
