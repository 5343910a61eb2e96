package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nghetinhport/tos-bigdata-api/internal/config"
)

// Redis wraps the go-redis client. A nil client means Redis is not
// configured; the login throttle then admits everything.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration. An empty
// address disables Redis.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if cfg.Addr == "" {
		logger.Info("REDIS_ADDR not provided; login throttle disabled")
		return &Redis{Client: nil}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// Enabled reports whether a client is configured.
func (r *Redis) Enabled() bool {
	return r != nil && r.Client != nil
}

// FailedLogins counts failed login attempts for a username within the
// throttle window.
func (r *Redis) FailedLogins(ctx context.Context, username string) (int64, error) {
	if !r.Enabled() {
		return 0, nil
	}
	n, err := r.Client.Get(ctx, loginAttemptKey(username)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// RecordFailedLogin increments the failure counter, starting the window on
// the first failure.
func (r *Redis) RecordFailedLogin(ctx context.Context, username string, window time.Duration) error {
	if !r.Enabled() {
		return nil
	}
	key := loginAttemptKey(username)
	n, err := r.Client.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 1 {
		return r.Client.Expire(ctx, key, window).Err()
	}
	return nil
}

// ResetFailedLogins clears the counter after a successful login.
func (r *Redis) ResetFailedLogins(ctx context.Context, username string) error {
	if !r.Enabled() {
		return nil
	}
	return r.Client.Del(ctx, loginAttemptKey(username)).Err()
}

func loginAttemptKey(username string) string {
	return fmt.Sprintf("login:attempts:%s", username)
}
