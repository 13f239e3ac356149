package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// 验证码在 Redis 中的过期时间
	codeTTL = 10 * time.Minute
	// Redis key 前缀
	codeKeyPrefix = "verification:"
)

var (
	// ErrCodeExpired 验证码不存在或已过期
	ErrCodeExpired = errors.New("verification code has expired or is invalid")
	// ErrCodeMismatch 验证码不匹配
	ErrCodeMismatch = errors.New("invalid verification code")
)

// VerificationStore 邮箱验证码存储
type VerificationStore struct {
	redis *redis.Client
}

// NewVerificationStore 创建验证码存储
func NewVerificationStore(redisClient *redis.Client) *VerificationStore {
	return &VerificationStore{redis: redisClient}
}

// Issue 为邮箱生成 6 位验证码并写入 Redis，覆盖旧码
func (v *VerificationStore) Issue(ctx context.Context, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)

	key := codeKeyPrefix + email
	if err := v.redis.Set(ctx, key, code, codeTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store verification code: %w", err)
	}
	return code, nil
}

// Verify 校验邮箱验证码
func (v *VerificationStore) Verify(ctx context.Context, email, code string) error {
	key := codeKeyPrefix + email
	stored, err := v.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCodeExpired
		}
		return fmt.Errorf("failed to read verification code: %w", err)
	}

	if stored != code {
		return ErrCodeMismatch
	}
	return nil
}

// Invalidate 删除邮箱验证码
func (v *VerificationStore) Invalidate(ctx context.Context, email string) error {
	return v.redis.Del(ctx, codeKeyPrefix+email).Err()
}
