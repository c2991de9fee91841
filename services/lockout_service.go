package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// MaxLoginAttempts số lần đăng nhập sai tối đa trước khi khóa
	MaxLoginAttempts = 5
	// LoginLockoutTTL thời gian khóa và cũng là thời gian sống của bộ đếm
	LoginLockoutTTL = 15 * time.Minute
)

func loginAttemptKey(identifier string) string {
	return "login_attempts:" + identifier
}

// IsLoginLocked kiểm tra identifier có đang bị khóa đăng nhập không.
// Bộ đếm nằm trên Redis với TTL nên chạy nhiều process vẫn chia sẻ được.
func IsLoginLocked(ctx context.Context, rdb *redis.Client, identifier string) (bool, error) {
	attempts, err := rdb.Get(ctx, loginAttemptKey(identifier)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return attempts >= MaxLoginAttempts, nil
}

// RecordFailedLogin tăng bộ đếm đăng nhập sai và trả về số lần còn lại trước khi khóa
func RecordFailedLogin(ctx context.Context, rdb *redis.Client, identifier string) (int, error) {
	key := loginAttemptKey(identifier)

	attempts, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("không thể tăng bộ đếm đăng nhập: %v", err)
	}

	// Đặt TTL ở lần sai đầu tiên để bộ đếm tự hết hạn
	if attempts == 1 {
		if err := rdb.Expire(ctx, key, LoginLockoutTTL).Err(); err != nil {
			return 0, err
		}
	}

	remaining := MaxLoginAttempts - int(attempts)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// ResetLoginAttempts xóa bộ đếm sau khi đăng nhập thành công
func ResetLoginAttempts(ctx context.Context, rdb *redis.Client, identifier string) error {
	return rdb.Del(ctx, loginAttemptKey(identifier)).Err()
}
