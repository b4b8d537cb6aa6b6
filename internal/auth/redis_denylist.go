package auth

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

// RedisDenylist stores revoked token IDs as expiring redis keys, so a
// logout is visible to every server instance.
type RedisDenylist struct {
	client rueidis.Client
	prefix string
}

func NewRedisDenylist(client rueidis.Client, prefix string) *RedisDenylist {
	return &RedisDenylist{
		client: client,
		prefix: prefix,
	}
}

func (d *RedisDenylist) key(tokenID string) string {
	return d.prefix + ":" + tokenID
}

func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	cmd := d.client.B().Set().Key(d.key(tokenID)).Value("1").
		Ex(ttl).Build()
	return d.client.Do(ctx, cmd).Error()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	cmd := d.client.B().Exists().Key(d.key(tokenID)).Build()
	n, err := d.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
