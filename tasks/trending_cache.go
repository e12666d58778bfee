package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/repo/redis"
)

// TrendingCacheTask 负责定时刷新热门帖子榜单。
// 先从浏览量排行榜截取 Top N 生成快照 ZSet，再基于快照把帖子摘要
// 写入 Hash，信息流的热门页直接读这两个结构。
type TrendingCacheTask struct {
	trendingCache redis.TrendingCache
	cron          *cron.Cron
	logger        *core.ZapLogger
}

// NewTrendingCacheTask 初始化并启动热门榜单刷新的定时任务。
func NewTrendingCacheTask(trendingCache redis.TrendingCache, logger *core.ZapLogger) *TrendingCacheTask {
	task := &TrendingCacheTask{
		trendingCache: trendingCache,
		cron:          cron.New(),
		logger:        logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *TrendingCacheTask) startCronJob() {
	schedule := constant.TrendingCacheCronSpec
	t.logger.Info("准备启动热门榜单刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("热门榜单刷新任务开始执行...")
		startTime := time.Now()
		// 单次执行超时 5 分钟，覆盖快照生成与帖子摘要回填。
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		t.refreshTrending(ctx)

		t.logger.Info("热门榜单刷新任务执行完毕", zap.Duration("duration", time.Since(startTime)))
	})
	if err != nil {
		t.logger.Fatal("添加热门榜单刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("热门榜单刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// refreshTrending 执行一次完整刷新：
// 1. 从浏览量排行榜生成 Top N 快照。
// 2. 回源 MySQL 把快照内帖子的摘要写入 Hash。
// 快照失败时摘要必然基于旧榜单，直接中止本轮。
func (t *TrendingCacheTask) refreshTrending(ctx context.Context) {
	if err := t.trendingCache.CreateTrendingSnapshot(ctx, constant.TrendingCacheSize); err != nil {
		t.logger.Error("生成热门榜单快照失败，本轮刷新中止", zap.Error(err))
		return
	}

	if err := t.trendingCache.CacheTrendingPostsToRedis(ctx); err != nil {
		t.logger.Error("回填热门帖子摘要失败", zap.Error(err))
		return
	}
	t.logger.Info("热门榜单刷新完成")
}

// Stop 优雅地停止 cron 调度器。
func (t *TrendingCacheTask) Stop() context.Context {
	t.logger.Info("正在停止热门榜单刷新定时任务...")
	return t.cron.Stop()
}
