package mock

import (
	"context"

	"github.com/pulseai/modex"
)

var _ modex.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of modex.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn != nil {
		return l.WaitFn(ctx, domain)
	}
	return nil
}
