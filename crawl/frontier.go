package crawl

import (
	"strings"
	"sync"

	"github.com/pulseai/modex"
	"github.com/pulseai/modex/bloom"
)

// Compile-time interface verification.
var _ modex.URLFrontier = (*Frontier)(nil)

// queuedURL is a URL waiting in the frontier with its crawl depth.
type queuedURL struct {
	url   string
	depth int
}

// Frontier is an in-memory FIFO URL frontier with Bloom filter deduplication.
// FIFO ordering gives the crawler breadth-first traversal. It is safe for
// concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []queuedURL
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push adds a URL to the back of the frontier at the given depth.
// Returns false if the URL has already been seen.
// URL fragments are stripped before deduplication - URLs differing only by
// fragment are considered duplicates.
func (f *Frontier) Push(rawURL string, depth int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(rawURL)

	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	f.queue = append(f.queue, queuedURL{url: url, depth: depth})
	return true
}

// Pop returns the next URL in FIFO order along with its depth.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", 0, false
	}
	next := f.queue[0]
	f.queue = f.queue[1:]
	return next.url, next.depth, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been processed or queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
