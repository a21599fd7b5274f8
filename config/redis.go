package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// InitRedisDB connects and verifies the connection with a ping. Callers
// decide whether a failure is fatal; rate limiting degrades to a no-op
// without redis.
func InitRedisDB(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
