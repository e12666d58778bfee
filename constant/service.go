package constant

// 服务标识，用于追踪、日志等场景
const (
	ServiceName    = "blog_service"
	ServiceVersion = "1.0.0"
)

// 定时任务的 cron 表达式
const (
	// SyncViewCountInterval 浏览量从 Redis 同步到 MySQL 的调度表达式（每 5 分钟）
	SyncViewCountInterval = "*/5 * * * *"

	// TrendingCacheCronSpec 热门榜单快照刷新的调度表达式（每 10 分钟）
	TrendingCacheCronSpec = "*/10 * * * *"
)

// TrendingCacheSize 热门榜单快照保留的帖子数量
const TrendingCacheSize int64 = 100

// COSObjectKeyPrefixCoverImages 封面图在 COS 中的对象键前缀
const COSObjectKeyPrefixCoverImages = "blog/covers/"

// COSObjectKeyPrefixAvatars 用户头像在 COS 中的对象键前缀
const COSObjectKeyPrefixAvatars = "blog/avatars/"
