package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/cafeops/eventbrew/pkg/logger"
)

const (
	redisKeyPrefix    = "eventbrew:doc:"
	redisChangePrefix = "eventbrew:changed:"
)

// RedisStore is a Store backed by Redis. Documents live under a key prefix
// and every write publishes the logical key on a pub/sub channel, so other
// processes sharing the same Redis converge after their next sync cycle.
type RedisStore struct {
	client *redis.Client

	mu          sync.RWMutex
	subscribers map[int]func(key string)
	nextSubID   int

	pubsub *redis.PubSub
	cancel context.CancelFunc
}

// NewRedisStore creates a Store backed by the given Redis client and starts
// listening for change notifications published by any process.
func NewRedisStore(client *redis.Client) (*RedisStore, error) {
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &RedisStore{
		client:      client,
		subscribers: make(map[int]func(key string)),
		pubsub:      client.PSubscribe(ctx, redisChangePrefix+"*"),
		cancel:      cancel,
	}

	go s.listen(ctx)

	logger.Logger.Info().Msg("Redis document store initialized")
	return s, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := s.client.Publish(ctx, redisChangePrefix+key, "set").Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("key", key).Msg("Failed to publish change notification")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	if err := s.client.Publish(ctx, redisChangePrefix+key, "del").Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("key", key).Msg("Failed to publish change notification")
	}
	return nil
}

func (s *RedisStore) Subscribe(handler func(key string)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = handler
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Close stops the change listener and releases the pub/sub connection
func (s *RedisStore) Close() error {
	s.cancel()
	return s.pubsub.Close()
}

func (s *RedisStore) listen(ctx context.Context) {
	ch := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			key := strings.TrimPrefix(msg.Channel, redisChangePrefix)

			s.mu.RLock()
			handlers := make([]func(string), 0, len(s.subscribers))
			for _, h := range s.subscribers {
				handlers = append(handlers, h)
			}
			s.mu.RUnlock()

			for _, h := range handlers {
				h(key)
			}
		}
	}
}
