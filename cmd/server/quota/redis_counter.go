package quota

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultRedisKeyPrefix = "today-knowledge:quota:"

	// 날짜 경계 전후의 시계 오차를 고려해 하루보다 길게 둔다.
	redisKeyTTL = 48 * time.Hour
)

// RedisCounter 는 여러 서버 인스턴스가 일일 사용량을 공유할 때 쓰는 카운터이다.
type RedisCounter struct {
	rdb       *redis.Client
	keyPrefix string
}

func NewRedisCounter(rdb *redis.Client, keyPrefix string) *RedisCounter {
	if keyPrefix == "" {
		keyPrefix = DefaultRedisKeyPrefix
	}
	return &RedisCounter{rdb: rdb, keyPrefix: keyPrefix}
}

// ConnectRedis 는 URL 로 클라이언트를 만들고 Ping 으로 연결을 확인한다.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (c *RedisCounter) Incr(ctx context.Context, dayKey string) (int64, error) {
	key := c.keyPrefix + dayKey

	var incr *redis.IntCmd
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, redisKeyTTL)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (c *RedisCounter) Decr(ctx context.Context, dayKey string) error {
	return c.rdb.Decr(ctx, c.keyPrefix+dayKey).Err()
}

func (c *RedisCounter) Get(ctx context.Context, dayKey string) (int64, error) {
	used, err := c.rdb.Get(ctx, c.keyPrefix+dayKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return used, err
}
