package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loginAttemptLimit  = 10
	loginAttemptWindow = 15 * time.Minute
)

// LoginLimiter throttles failed logins per client IP with a fixed window
// counter in Redis. The admin password guards the whole write surface, so
// online guessing needs a hard stop.
type LoginLimiter struct {
	redis *redis.Client
}

func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{redis: client}
}

func attemptKey(ip string) string {
	return fmt.Sprintf("login_attempts:%s", ip)
}

// Allow reports whether the IP is still under the failure threshold.
func (l *LoginLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	count, err := l.redis.Get(ctx, attemptKey(ip)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil
		}
		return false, err
	}
	return count < loginAttemptLimit, nil
}

// RecordFailure bumps the counter, starting the window on the first miss.
func (l *LoginLimiter) RecordFailure(ctx context.Context, ip string) error {
	key := attemptKey(ip)
	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		return l.redis.Expire(ctx, key, loginAttemptWindow).Err()
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, ip string) error {
	return l.redis.Del(ctx, attemptKey(ip)).Err()
}
