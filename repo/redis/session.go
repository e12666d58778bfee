package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// SessionRepository 定义了登录会话在 Redis 中的存取接口。
// 会话令牌是服务端生成的 UUID，值为用户 ID，TTL 到期自动失效。
type SessionRepository interface {
	// CreateSession 写入一条会话记录。
	CreateSession(ctx context.Context, token string, userID string, ttl time.Duration) error

	// GetUserIDByToken 按令牌查会话，返回持有者的用户 ID。
	// - 令牌不存在或已过期时返回 myErrors.ErrSessionNotFound。
	GetUserIDByToken(ctx context.Context, token string) (string, error)

	// DeleteSession 删除会话，用于登出。删除不存在的会话静默成功。
	DeleteSession(ctx context.Context, token string) error

	// RefreshSession 滑动续期会话，每次通过鉴权后调用。
	RefreshSession(ctx context.Context, token string, ttl time.Duration) error
}

// sessionRepository 是 SessionRepository 接口的 Redis 实现。
type sessionRepository struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewSessionRepository 是 sessionRepository 的构造函数。
func NewSessionRepository(redisClient *redis.Client, logger *core.ZapLogger) SessionRepository {
	return &sessionRepository{
		redisClient: redisClient,
		logger:      logger,
	}
}

func sessionKey(token string) string {
	return constant.SessionKeyPrefix + token
}

// CreateSession 实现会话写入。
func (r *sessionRepository) CreateSession(ctx context.Context, token string, userID string, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, sessionKey(token), userID, ttl).Err(); err != nil {
		r.logger.Error("写入会话到 Redis 失败", zap.Error(err), zap.String("userID", userID))
		return fmt.Errorf("写入会话失败: %w", err)
	}
	return nil
}

// GetUserIDByToken 实现会话查询。
func (r *sessionRepository) GetUserIDByToken(ctx context.Context, token string) (string, error) {
	userID, err := r.redisClient.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", myErrors.ErrSessionNotFound
		}
		r.logger.Error("查询会话失败", zap.Error(err))
		return "", fmt.Errorf("查询会话失败: %w", err)
	}
	return userID, nil
}

// DeleteSession 实现会话删除。
func (r *sessionRepository) DeleteSession(ctx context.Context, token string) error {
	if err := r.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
		r.logger.Error("删除会话失败", zap.Error(err))
		return fmt.Errorf("删除会话失败: %w", err)
	}
	return nil
}

// RefreshSession 实现会话滑动续期。
func (r *sessionRepository) RefreshSession(ctx context.Context, token string, ttl time.Duration) error {
	// 令牌已不存在时 EXPIRE 返回 0，无需报错，下一次鉴权自然失败。
	if err := r.redisClient.Expire(ctx, sessionKey(token), ttl).Err(); err != nil {
		r.logger.Warn("会话续期失败", zap.Error(err))
		return fmt.Errorf("会话续期失败: %w", err)
	}
	return nil
}
