// File: repo/redis/trending.go
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
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// TrendingCache 定义了后台任务管理和读取热门帖子缓存的操作接口。
type TrendingCache interface {
	// CreateTrendingSnapshot 原子性地从总排行榜 (`PostsRankKey`) 截取前 N 条记录，
	// 生成/覆盖热门榜快照 (`TrendingRankKey`)。
	CreateTrendingSnapshot(ctx context.Context, n int64) error

	// CacheTrendingPostsToRedis 按热门榜快照从 MySQL 加载帖子数据，写入 Redis Hash。
	// 采用临时 Key + RENAME 策略，保证读取方看到的缓存始终完整。
	CacheTrendingPostsToRedis(ctx context.Context) error

	// GetTrendingPosts 按热度降序返回热门帖子列表。
	// - 缓存为空时返回空列表，不回源数据库，由定时任务负责填充。
	GetTrendingPosts(ctx context.Context) ([]*entities.Post, error)
}

// trendingCacheImpl 是 TrendingCache 接口的 Redis 实现。
type trendingCacheImpl struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
	postRepo    mysql.PostRepository
}

// NewTrendingCache 创建 TrendingCache 的新实例。
func NewTrendingCache(
	redisClient *redis.Client,
	logger *core.ZapLogger,
	postRepo mysql.PostRepository,
) TrendingCache {
	return &trendingCacheImpl{
		redisClient: redisClient,
		logger:      logger,
		postRepo:    postRepo,
	}
}

// CreateTrendingSnapshot 原子性地从总排行榜截取前 N 条记录，生成或覆盖热门榜快照。
func (c *trendingCacheImpl) CreateTrendingSnapshot(ctx context.Context, n int64) error {
	if n <= 0 {
		c.logger.Info("CreateTrendingSnapshot: 请求的快照大小 n 小于或等于 0，操作取消。", zap.Int64("n", n))
		return nil
	}

	// ZREVRANGE WITHSCORES 返回 {member1, score1, ...}，
	// ZADD 需要 {score1, member1, ...}，在 Lua 中重新构造参数列表。
	luaScript := redis.NewScript(`
		local items_with_scores = redis.call("ZREVRANGE", KEYS[1], 0, tonumber(ARGV[1]) - 1, "WITHSCORES")
		redis.call("DEL", KEYS[2])

		if #items_with_scores > 0 then
			local args_for_zadd = { KEYS[2] }
			for i = 1, #items_with_scores, 2 do
				table.insert(args_for_zadd, items_with_scores[i+1])
				table.insert(args_for_zadd, items_with_scores[i])
			end
			redis.call("ZADD", unpack(args_for_zadd))
		end
		return #items_with_scores / 2
	`)

	_, err := luaScript.Run(ctx, c.redisClient, []string{constant.PostsRankKey, constant.TrendingRankKey}, n).Result()
	if err != nil {
		c.logger.Error("执行 Lua 脚本创建热门榜快照失败",
			zap.Error(err),
			zap.String("sourceKey", constant.PostsRankKey),
			zap.String("destinationKey", constant.TrendingRankKey),
			zap.Int64("n", n),
		)
		return fmt.Errorf("创建热门榜快照 (Top %d) 失败: %w", n, err)
	}

	return nil
}

// CacheTrendingPostsToRedis 将热门帖子缓存到 Redis Hash。
func (c *trendingCacheImpl) CacheTrendingPostsToRedis(ctx context.Context) error {
	startTime := time.Now()

	snapshotKey := constant.TrendingRankKey
	finalHashKey := constant.TrendingPostsHashKey
	tempHashKey := finalHashKey + "_temp_" + strconv.FormatInt(time.Now().UnixNano(), 10)

	postScores, err := c.redisClient.ZRevRangeWithScores(ctx, snapshotKey, 0, constant.TrendingCacheSize-1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.logger.Error("从热门榜快照获取帖子分数失败", zap.Error(err), zap.String("key", snapshotKey))
		return fmt.Errorf("获取热门榜快照失败: %w", err)
	}

	currentHotPostIDs := make([]uint64, 0, len(postScores))
	currentScoreMap := make(map[uint64]float64, len(postScores))
	for _, z := range postScores {
		idStr, ok := z.Member.(string)
		if !ok {
			return fmt.Errorf("热门榜快照 (key: %s) 成员类型非字符串 (member: %v)，数据异常", snapshotKey, z.Member)
		}
		id, parseErr := strconv.ParseUint(idStr, 10, 64)
		if parseErr != nil {
			return fmt.Errorf("解析热门榜快照成员 ID '%s' 失败: %w", idStr, parseErr)
		}
		currentHotPostIDs = append(currentHotPostIDs, id)
		currentScoreMap[id] = z.Score
	}

	// 快照为空时清空缓存即可。
	if len(currentHotPostIDs) == 0 {
		c.logger.Info("热门榜快照为空，清空热门帖子 Hash 缓存", zap.String("hashKeyToClear", finalHashKey))
		if delErr := c.redisClient.Del(ctx, finalHashKey).Err(); delErr != nil {
			c.logger.Error("清空热门帖子 Hash 缓存失败", zap.Error(delErr), zap.String("key", finalHashKey))
		}
		return nil
	}

	postsFromDB, dbErr := c.postRepo.GetPostsByIDs(ctx, currentHotPostIDs)
	if dbErr != nil {
		c.logger.Error("从 MySQL 批量获取热门帖子失败，本次缓存更新中止，现有缓存将保留。",
			zap.Error(dbErr), zap.Int("idCount", len(currentHotPostIDs)))
		return fmt.Errorf("从数据库获取帖子数据失败: %w", dbErr)
	}

	dataToCache := make(map[string]interface{}, len(postsFromDB))
	marshalErrors := 0
	for _, post := range postsFromDB {
		postToCache := *post
		// 快照中的分数是最新的浏览量，优先于 DB 中尚未回写的值。
		if score, scoreExists := currentScoreMap[post.ID]; scoreExists {
			postToCache.ViewCount = int64(score)
		}
		jsonData, jsonErr := json.Marshal(postToCache)
		if jsonErr != nil {
			c.logger.Error("序列化帖子实体失败，跳过该帖子", zap.Error(jsonErr), zap.Uint64("postID", post.ID))
			marshalErrors++
			continue
		}
		dataToCache[strconv.FormatUint(post.ID, 10)] = jsonData
	}

	if len(dataToCache) == 0 {
		c.logger.Error("未能准备任何有效的帖子数据进行缓存，现有缓存将保留。",
			zap.Int("snapshotIDs", len(currentHotPostIDs)),
			zap.Int("dbPostsFetched", len(postsFromDB)),
			zap.Int("marshalErrors", marshalErrors),
		)
		return errors.New("未能准备有效的帖子数据进行缓存，操作中止")
	}

	// 先写临时 Hash，再 RENAME 覆盖，避免读取方看到半成品缓存。
	pipe := c.redisClient.Pipeline()
	pipe.Del(ctx, tempHashKey)
	pipe.HMSet(ctx, tempHashKey, dataToCache)
	if _, execErr := pipe.Exec(ctx); execErr != nil {
		c.logger.Error("执行 Redis Pipeline (写入临时 Hash) 失败，现有缓存将保留。",
			zap.Error(execErr), zap.String("tempHashKey", tempHashKey))
		c.redisClient.Del(ctx, tempHashKey)
		return fmt.Errorf("写入临时热门帖子 Hash 缓存 (key: %s) 失败: %w", tempHashKey, execErr)
	}

	if renameErr := c.redisClient.Rename(ctx, tempHashKey, finalHashKey).Err(); renameErr != nil {
		c.logger.Error("执行 Redis RENAME 失败，新缓存可能仍在临时 Key 中。",
			zap.Error(renameErr),
			zap.String("tempHashKey", tempHashKey),
			zap.String("finalHashKey", finalHashKey),
		)
		c.redisClient.Del(ctx, tempHashKey)
		return fmt.Errorf("重命名临时 Hash (key: %s) 到最终 Hash (key: %s) 失败: %w", tempHashKey, finalHashKey, renameErr)
	}

	c.logger.Info("成功将热门帖子同步到 Redis Hash",
		zap.String("finalHashKey", finalHashKey),
		zap.Int("cachedCount", len(dataToCache)),
		zap.Int("marshalErrors", marshalErrors),
		zap.Duration("duration", time.Since(startTime)),
	)
	return nil
}

// GetTrendingPosts 按快照顺序读取热门帖子缓存。
func (c *trendingCacheImpl) GetTrendingPosts(ctx context.Context) ([]*entities.Post, error) {
	ids, err := c.redisClient.ZRevRange(ctx, constant.TrendingRankKey, 0, constant.TrendingCacheSize-1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.logger.Error("读取热门榜快照失败", zap.Error(err), zap.String("key", constant.TrendingRankKey))
		return nil, fmt.Errorf("读取热门榜快照失败: %w", err)
	}
	if len(ids) == 0 {
		return []*entities.Post{}, nil
	}

	values, err := c.redisClient.HMGet(ctx, constant.TrendingPostsHashKey, ids...).Result()
	if err != nil {
		c.logger.Error("读取热门帖子 Hash 缓存失败", zap.Error(err), zap.String("key", constant.TrendingPostsHashKey))
		return nil, fmt.Errorf("读取热门帖子缓存失败: %w", err)
	}

	posts := make([]*entities.Post, 0, len(values))
	for i, v := range values {
		if v == nil {
			// 快照与 Hash 之间允许短暂不一致，缺失的条目直接跳过。
			continue
		}
		raw, ok := v.(string)
		if !ok {
			c.logger.Warn("热门帖子缓存条目类型异常，已跳过", zap.String("member", ids[i]))
			continue
		}
		var post entities.Post
		if unmarshalErr := json.Unmarshal([]byte(raw), &post); unmarshalErr != nil {
			c.logger.Error("反序列化热门帖子缓存失败，已跳过", zap.Error(unmarshalErr), zap.String("member", ids[i]))
			continue
		}
		posts = append(posts, &post)
	}

	return posts, nil
}
