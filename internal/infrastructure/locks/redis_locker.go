package locks

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Rehan72/sol-sub000/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisLocker implements short-lived mutual exclusion with SET NX + TTL.
// The TTL is the safety net: a crashed holder releases the lock when it
// expires instead of wedging the flow forever.
type RedisLocker struct {
	client *redis.Client
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

// NewLockerFromEnv returns a redis-backed locker when REDIS_ADDR is set and a
// no-op locker otherwise. Single-instance deployments stay correct without
// redis because every write is still guarded by a conditional expression in
// storage; the lock only reduces wasted gateway calls under contention.
func NewLockerFromEnv() interfaces.ILocker {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Printf("[locks][infra] REDIS_ADDR not set; using no-op locker")
		return NoopLocker{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	log.Printf("[locks][infra] redis locker initialized addr=%s", addr)
	return NewRedisLocker(client)
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, key, "1", ttl).Result()
}

func (l *RedisLocker) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, key).Err()
}

// NoopLocker always grants the lock.
type NoopLocker struct{}

var _ interfaces.ILocker = NoopLocker{}

func (NoopLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return true, nil
}

func (NoopLocker) Release(ctx context.Context, key string) error {
	return nil
}
