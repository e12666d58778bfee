package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/repo/redis"
)

// ViewCountSyncTask 负责定时将 Redis 中累加的帖子浏览量回写到 MySQL。
// 浏览计数的实时增量只落在 Redis，数据库里的 view_count 按调度周期批量追平。
type ViewCountSyncTask struct {
	postViewRepo  redis.PostViewRepository
	postBatchRepo mysql.PostBatchOperationsRepository
	cron          *cron.Cron
	logger        *core.ZapLogger
}

// NewViewCountSyncTask 初始化并启动浏览量同步的定时任务。
func NewViewCountSyncTask(
	postViewRepo redis.PostViewRepository,
	postBatchRepo mysql.PostBatchOperationsRepository,
	logger *core.ZapLogger,
) *ViewCountSyncTask {
	task := &ViewCountSyncTask{
		postViewRepo:  postViewRepo,
		postBatchRepo: postBatchRepo,
		cron:          cron.New(),
		logger:        logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *ViewCountSyncTask) startCronJob() {
	schedule := constant.SyncViewCountInterval
	t.logger.Info("准备启动帖子浏览量同步MySQL定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("帖子浏览量同步MySQL任务开始执行...")
		startTime := time.Now()
		// 单次执行超时 3 分钟，覆盖 Redis 全量读取与 MySQL 批量更新。
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		t.syncViewCountsToDB(ctx)

		t.logger.Info("帖子浏览量同步MySQL任务执行完毕", zap.Duration("duration", time.Since(startTime)))
	})
	if err != nil {
		t.logger.Fatal("添加帖子浏览量同步 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("帖子浏览量同步MySQL定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// syncViewCountsToDB 执行一次完整同步：
// 1. 从 Redis 扫描全量帖子浏览量。
// 2. 批量更新到 MySQL（内部分批 + 并发 worker）。
func (t *ViewCountSyncTask) syncViewCountsToDB(ctx context.Context) {
	viewCounts, err := t.postViewRepo.GetAllViewCounts(ctx)
	if err != nil {
		t.logger.Error("从 Redis 获取全量浏览量失败，本次同步中止", zap.Error(err))
		return
	}
	if len(viewCounts) == 0 {
		t.logger.Info("Redis 中没有浏览量数据，本次无需同步")
		return
	}

	if err := t.postBatchRepo.BatchUpdatePostViewCounts(ctx, viewCounts); err != nil {
		t.logger.Error("批量更新浏览量到 MySQL 失败", zap.Error(err), zap.Int("提交数量", len(viewCounts)))
		return
	}
	t.logger.Info("浏览量批量回写 MySQL 完成", zap.Int("提交数量", len(viewCounts)))
}

// Stop 优雅地停止 cron 调度器。
// 返回的 context 在所有执行中的任务结束后关闭，调用者可以等待它。
func (t *ViewCountSyncTask) Stop() context.Context {
	t.logger.Info("正在停止帖子浏览量同步MySQL定时任务...")
	return t.cron.Stop()
}
