package auth

import (
	"context"
	"sync"
	"time"
)

// Denylist records the token IDs of sessions ended by logout. A revoked
// token is rejected for the remainder of its lifetime even though its
// signature is still valid.
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// MemoryDenylist keeps revocations in process memory. Suitable for a single
// instance and for tests; multi-instance deployments use the redis list.
type MemoryDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{revoked: make(map[string]time.Time)}
}

func (d *MemoryDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (d *MemoryDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	expiry, ok := d.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(d.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
