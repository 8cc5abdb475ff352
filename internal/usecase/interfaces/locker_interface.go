package interfaces

import (
	"context"
	"time"
)

// ILocker provides short-lived mutual exclusion keyed by string, used to
// serialize payment recording per (customer, milestone) and step completion
// per (customer, phase). Acquire returns false when the key is already held.
type ILocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
