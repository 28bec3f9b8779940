package modex

import "context"

// URLFrontier manages a breadth-first crawl queue with deduplication.
type URLFrontier interface {
	// Push enqueues a URL at the given depth.
	// Returns false if the URL has already been seen.
	Push(url string, depth int) bool

	// Pop dequeues the next URL in breadth-first order.
	// Returns false if the frontier is empty.
	Pop() (url string, depth int, ok bool)

	// Len returns the number of URLs in the queue.
	Len() int

	// Seen returns true if the URL has been processed or queued.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
