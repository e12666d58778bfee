package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// 评论列表缓存的保底过期时间。
// 正常情况下缓存由评论变更事件的消费者主动刷新，TTL 只兜底事件丢失的场景。
const commentCacheTTL = 10 * time.Minute

// CommentCache 定义了帖子评论列表的缓存操作接口。
// - 目标: 帖子详情页的评论列表是读远多于写的热点数据，用 Redis 挡掉大部分数据库查询。
// - 一致性: 评论增删会发布变更事件，消费者收到后回源重建缓存。
type CommentCache interface {
	// GetComments 读取帖子的评论列表缓存。
	// - 缓存未命中时返回 myErrors.ErrCacheMiss，上层服务需要处理回源。
	GetComments(ctx context.Context, postID uint64) (*vo.CommentListVO, error)

	// SetComments 写入帖子的评论列表缓存。
	SetComments(ctx context.Context, postID uint64, comments *vo.CommentListVO) error

	// InvalidateComments 删除帖子的评论列表缓存。
	// - 评论写入后立即调用，消费者随后异步重建。
	InvalidateComments(ctx context.Context, postID uint64) error
}

// commentCacheImpl 是 CommentCache 接口的 Redis 实现。
type commentCacheImpl struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewCommentCache 是 commentCacheImpl 的构造函数。
func NewCommentCache(redisClient *redis.Client, logger *core.ZapLogger) CommentCache {
	return &commentCacheImpl{
		redisClient: redisClient,
		logger:      logger,
	}
}

func commentCacheKey(postID uint64) string {
	return constant.PostCommentsCachePrefix + strconv.FormatUint(postID, 10)
}

// GetComments 实现评论列表缓存读取。
func (c *commentCacheImpl) GetComments(ctx context.Context, postID uint64) (*vo.CommentListVO, error) {
	raw, err := c.redisClient.Get(ctx, commentCacheKey(postID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("读取评论列表缓存失败", zap.Error(err), zap.Uint64("postID", postID))
		return nil, fmt.Errorf("读取评论列表缓存失败 (PostID: %d): %w", postID, err)
	}

	var list vo.CommentListVO
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		// 缓存内容损坏按未命中处理，同时删掉脏数据。
		c.logger.Error("反序列化评论列表缓存失败，按缓存未命中处理", zap.Error(err), zap.Uint64("postID", postID))
		c.redisClient.Del(ctx, commentCacheKey(postID))
		return nil, myErrors.ErrCacheMiss
	}

	return &list, nil
}

// SetComments 实现评论列表缓存写入。
func (c *commentCacheImpl) SetComments(ctx context.Context, postID uint64, comments *vo.CommentListVO) error {
	data, err := json.Marshal(comments)
	if err != nil {
		return fmt.Errorf("序列化评论列表失败 (PostID: %d): %w", postID, err)
	}

	if err := c.redisClient.Set(ctx, commentCacheKey(postID), data, commentCacheTTL).Err(); err != nil {
		c.logger.Error("写入评论列表缓存失败", zap.Error(err), zap.Uint64("postID", postID))
		return fmt.Errorf("写入评论列表缓存失败 (PostID: %d): %w", postID, err)
	}
	return nil
}

// InvalidateComments 实现评论列表缓存删除。
func (c *commentCacheImpl) InvalidateComments(ctx context.Context, postID uint64) error {
	if err := c.redisClient.Del(ctx, commentCacheKey(postID)).Err(); err != nil {
		c.logger.Error("删除评论列表缓存失败", zap.Error(err), zap.Uint64("postID", postID))
		return fmt.Errorf("删除评论列表缓存失败 (PostID: %d): %w", postID, err)
	}
	return nil
}
