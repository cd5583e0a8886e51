package infra_lookup_cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/goccy/go-json"
)

// Driver keeps lookup results as JSON lists under "<key>:<query>".
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	key string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (d *Driver) Get(ctx context.Context, query string) ([]string, bool, error) {
	val, err := d.client.WithContext(ctx).Get(d.fullKey(query)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	var labels []string
	if err := json.Unmarshal(val, &labels); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached labels: %w", err)
	}

	return labels, true, nil
}

func (d *Driver) Set(ctx context.Context, query string, labels []string) error {
	if labels == nil {
		labels = []string{}
	}
	data, err := json.Marshal(labels)
	if err != nil {
		return fmt.Errorf("failed to encode labels: %w", err)
	}

	return d.client.WithContext(ctx).Set(d.fullKey(query), data, d.ttl).Err()
}

func (d *Driver) fullKey(query string) string {
	if d.key != "" {
		return d.key + ":" + query
	}
	return query
}
