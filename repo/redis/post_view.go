package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/constant"
)

// PostViewRepository 定义了与帖子浏览、排名相关的 Redis 操作接口。
// - 目标: 提供高性能的接口来处理帖子浏览计数（防刷）、以及向 MySQL 同步浏览量。
type PostViewRepository interface {
	// IncrementViewCount 原子性地增加指定帖子的浏览量，并更新其在热度榜中的分数。
	// - 使用 Bloom Filter 防止同一用户在短时间 (TTL) 内重复计数。
	// - 使用 Lua 脚本保证计数器和 ZSet 的原子性更新。
	// - 如果用户已在 Bloom Filter 中，返回 nil 且不执行计数增加。
	IncrementViewCount(ctx context.Context, postID uint64, userID string) error

	// GetAllViewCounts 使用 SCAN 命令分批获取 Redis 中所有帖子的浏览量计数。
	// - 作为定时任务同步到 MySQL 的数据源。
	// - 使用 SCAN 避免一次性 KEYS 操作阻塞 Redis，MGET 批量获取提高效率。
	GetAllViewCounts(ctx context.Context) (map[uint64]int64, error)
}

// postViewRepository 是 PostViewRepository 接口的 Redis 实现。
type postViewRepository struct {
	redisClient       *redis.Client
	logger            *core.ZapLogger
	viewSyncCfg       config.ViewSyncConfig
	bloomFilterSize   int64   // Bloom Filter 配置: 预期容量
	bloomFilterHashes uint    // Bloom Filter 配置: 哈希函数数量
	bloomErrorRate    float64 // Bloom Filter 配置: 可接受的误判率
}

// NewPostViewRepository 创建 PostViewRepository 实例。
func NewPostViewRepository(redisClient *redis.Client, logger *core.ZapLogger, bloomFilterSize int64, bloomFilterHashes uint, bloomErrorRate float64, viewSyncCfg config.ViewSyncConfig) PostViewRepository {
	return &postViewRepository{
		redisClient:       redisClient,
		logger:            logger,
		viewSyncCfg:       viewSyncCfg,
		bloomFilterSize:   bloomFilterSize,
		bloomFilterHashes: bloomFilterHashes,
		bloomErrorRate:    bloomErrorRate,
	}
}

// IncrementViewCount 实现增加帖子浏览量的逻辑。
// 使用 Bloom Filter 防止用户短时间内重复刷量，并原子性地增加帖子浏览数及更新其在排行榜中的分数。
func (r *postViewRepository) IncrementViewCount(ctx context.Context, postID uint64, userID string) error {
	bloomKey := fmt.Sprintf("%s%d", constant.PostViewBloomPrefix, postID)
	viewCountKey := fmt.Sprintf("%s%d", constant.PostViewCountPrefix, postID)

	// 确保 Bloom Filter 已按需创建。
	// 过滤器已存在时 BF.RESERVE 返回 "ERR item exists"，视为正常情况。
	if err := r.redisClient.BFReserve(ctx, bloomKey, r.bloomErrorRate, r.bloomFilterSize).Err(); err != nil {
		if !strings.Contains(err.Error(), "ERR item exists") {
			r.logger.Error("创建或调整 Bloom Filter 失败", zap.Error(err), zap.String("bloomKey", bloomKey))
			return fmt.Errorf("创建或调整 Bloom Filter '%s' 失败: %w", bloomKey, err)
		}
	}

	// 使用 Bloom Filter 判断用户是否已浏览 (防刷核心)。
	userExists, err := r.redisClient.BFExists(ctx, bloomKey, userID).Result()
	if err != nil {
		r.logger.Error("检查用户是否在 Bloom Filter 中时出错", zap.Error(err), zap.String("bloomKey", bloomKey), zap.String("userID", userID))
		return fmt.Errorf("检查 Bloom Filter 出错 ('%s', '%s'): %w", bloomKey, userID, err)
	}
	if userExists {
		r.logger.Debug("用户已在 Bloom Filter 中，跳过计数", zap.Uint64("postID", postID), zap.String("userID", userID))
		return nil
	}

	// 将用户添加到 Bloom Filter 并刷新防刷窗口。
	if _, err = r.redisClient.BFAdd(ctx, bloomKey, userID).Result(); err != nil {
		r.logger.Error("添加用户到 Bloom Filter 失败", zap.Error(err), zap.String("bloomKey", bloomKey), zap.String("userID", userID))
		return fmt.Errorf("添加用户到 Bloom Filter '%s' 失败: %w", bloomKey, err)
	}
	if err := r.redisClient.Expire(ctx, bloomKey, constant.BloomViewTTL).Err(); err != nil {
		r.logger.Warn("设置 Bloom Filter 过期时间失败，但不中断计数", zap.Error(err), zap.String("bloomKey", bloomKey))
	}

	// 原子性增加浏览量并更新排行榜。
	luaScript := redis.NewScript(`
        local viewCount = redis.call("INCR", KEYS[1])
        redis.call("ZADD", KEYS[2], viewCount, ARGV[1])
        return viewCount
    `)

	_, err = luaScript.Run(ctx, r.redisClient, []string{viewCountKey, constant.PostsRankKey}, postID).Result()
	if err != nil {
		r.logger.Error("Lua 脚本执行失败：增加浏览量和更新排名", zap.Error(err), zap.Uint64("postID", postID))
		return fmt.Errorf("原子性增加浏览量失败 (PostID: %d): %w", postID, err)
	}

	return nil
}

// GetAllViewCounts 使用 SCAN 命令安全地迭代并获取所有帖子的浏览量。
// 此方法主要用于定时任务，将 Redis 中的全量浏览数据同步到 MySQL。
func (r *postViewRepository) GetAllViewCounts(ctx context.Context) (map[uint64]int64, error) {
	viewCounts := make(map[uint64]int64)
	var cursor uint64
	matchPattern := constant.PostViewCountPrefix + "*"

	scanCount := r.viewSyncCfg.ScanBatchSize
	if scanCount <= 0 {
		scanCount = 1000 // Fallback
		r.logger.Warn("GetAllViewCounts: 配置中的 ScanBatchSize 无效或为零，使用默认值。",
			zap.Int64("defaultScanBatchSize", scanCount),
			zap.Int64("configuredScanBatchSize", r.viewSyncCfg.ScanBatchSize),
		)
	}

	startTime := time.Now()

	// SCAN 迭代，直到游标返回 0 表示遍历完成。
	for {
		keys, nextCursor, err := r.redisClient.Scan(ctx, cursor, matchPattern, scanCount).Result()
		if err != nil {
			r.logger.Error("执行 Redis SCAN 命令失败",
				zap.Error(err),
				zap.Uint64("cursor", cursor),
				zap.String("pattern", matchPattern),
			)
			return nil, fmt.Errorf("扫描 Redis Keys 失败 (模式: %s): %w", matchPattern, err)
		}

		if len(keys) > 0 {
			values, mgetErr := r.redisClient.MGet(ctx, keys...).Result()
			if mgetErr != nil {
				r.logger.Error("执行 Redis MGET 命令批量获取浏览量失败", zap.Error(mgetErr), zap.Int("keyCount", len(keys)))
				return nil, fmt.Errorf("批量获取浏览量值失败 (%d keys): %w", len(keys), mgetErr)
			}

			for i, key := range keys {
				postIDStr := strings.TrimPrefix(key, constant.PostViewCountPrefix)
				postID, parseErr := strconv.ParseUint(postIDStr, 10, 64)
				if parseErr != nil {
					r.logger.Error("从 Redis Key 解析 PostID 失败，已跳过该 Key。", zap.Error(parseErr), zap.String("key", key))
					continue
				}

				// MGET 未命中或值非法都按 0 处理，保证同步任务不中断。
				var viewCount int64
				if i < len(values) && values[i] != nil {
					if valueStr, ok := values[i].(string); ok && valueStr != "" {
						parsedCount, parseCountErr := strconv.ParseInt(valueStr, 10, 64)
						if parseCountErr != nil {
							r.logger.Error("解析 Redis 中的浏览量值失败，该帖子浏览量将视为 0。",
								zap.Error(parseCountErr),
								zap.String("key", key),
								zap.String("value", valueStr),
							)
						} else {
							viewCount = parsedCount
						}
					}
				}
				viewCounts[postID] = viewCount
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	r.logger.Info("完成扫描 Redis 帖子浏览量",
		zap.Int("total_unique_posts_found", len(viewCounts)),
		zap.Duration("duration", time.Since(startTime)),
	)
	return viewCounts, nil
}
