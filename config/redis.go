package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client
var ctx = context.Background()

const (
	maxLoginAttempts = 5
	blockDuration    = 15 * time.Minute
)

func InitRedis() error {
	db := 0
	if env := os.Getenv("REDIS_DB"); env != "" {
		if n, err := strconv.Atoi(env); err == nil {
			db = n
		}
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	_, err := RedisClient.Ping(ctx).Result()
	return err
}

// Login attempt tracking. A burst of failed logins temporarily blocks the
// email; any successful login clears the counters.

func IncrementLoginAttempts(email string) error {
	if RedisClient == nil {
		return nil
	}
	key := fmt.Sprintf("login_attempts:%s", email)

	attempts, err := RedisClient.Incr(ctx, key).Result()
	if err != nil {
		return err
	}

	if attempts == 1 {
		RedisClient.Expire(ctx, key, blockDuration)
	}

	if attempts >= maxLoginAttempts {
		blockKey := fmt.Sprintf("blocked:%s", email)
		RedisClient.Set(ctx, blockKey, "blocked", blockDuration)
	}

	return nil
}

func ResetLoginAttempts(email string) error {
	if RedisClient == nil {
		return nil
	}
	key := fmt.Sprintf("login_attempts:%s", email)
	blockKey := fmt.Sprintf("blocked:%s", email)

	RedisClient.Del(ctx, key)
	RedisClient.Del(ctx, blockKey)

	return nil
}

func IsLoginBlocked(email string) (bool, error) {
	if RedisClient == nil {
		return false, nil
	}
	key := fmt.Sprintf("blocked:%s", email)
	exists, err := RedisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
