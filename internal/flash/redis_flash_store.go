package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

var _ Store = (*RedisStore)(nil)

type RedisStore struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client rueidis.Client, keyPrefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: keyPrefix,
		ttl:    ttl,
	}
}

func (r *RedisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisStore) Put(ctx context.Context, sessionID string, kind Kind, message string) error {
	f, err := New(kind, message)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode flash: %w", err)
	}

	cmd := r.client.B().Set().
		Key(r.key(sessionID)).
		Value(string(payload)).
		ExSeconds(int64(r.ttl / time.Second)).
		Build()
	return r.client.Do(ctx, cmd).Error()
}

// Pull relies on GETDEL so two concurrent renders never both see the message.
func (r *RedisStore) Pull(ctx context.Context, sessionID string) (Flash, error) {
	cmd := r.client.B().Getdel().Key(r.key(sessionID)).Build()

	payload, err := r.client.Do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return Flash{}, nil
		}
		return Flash{}, err
	}

	var f Flash
	if err := json.Unmarshal([]byte(payload), &f); err != nil {
		return Flash{}, fmt.Errorf("failed to decode flash: %w", err)
	}
	return f, nil
}
