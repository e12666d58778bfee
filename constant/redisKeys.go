package constant

// Redis Key 相关常量 (导出)
const (
	// --- Key 前缀 (用于动态生成 Key) ---

	// SessionKeyPrefix 是登录会话的 Key 前缀。
	// 每个已登录会话对应一个 String 类型的 Key，值为用户ID，带 TTL。
	// 示例 Key: "blog_session:550e8400-..." (其中后缀是会话令牌)
	SessionKeyPrefix = "blog_session:"

	// PostViewBloomPrefix 是帖子浏览记录 Bloom Filter 的 Key 前缀。
	// 用于判断某个用户是否在防刷窗口内浏览过某帖子。
	// 示例 Key: "post_view_bloom:123" (其中 123 是 postID)
	PostViewBloomPrefix = "post_view_bloom:"

	// PostViewCountPrefix 是帖子浏览量计数器的 Key 前缀。
	// 示例 Key: "post_view_count:123"，Redis 类型: String
	PostViewCountPrefix = "post_view_count:"

	// PostCommentsCachePrefix 是帖子评论列表缓存的 Key 前缀。
	// 评论变更事件到达后由消费者全量刷新（整体替换，天然幂等）。
	// 示例 Key: "post_comments:123"，Redis 类型: String (JSON)
	PostCommentsCachePrefix = "post_comments:"

	// --- 固定 Key 名称 (全局使用的 Key) ---

	// PostsRankKey 是全局帖子浏览量排行榜 ZSet 的 Key。
	// 成员是帖子 ID，分数是浏览量。
	PostsRankKey = "post_rank"

	// TrendingRankKey 是热门帖子榜单 ZSet 的 Key。
	// 由定时任务从 PostsRankKey 截取 Top N 生成。
	TrendingRankKey = "trending_post_rank"

	// TrendingPostsHashKey 是热门帖子基础信息 Hash 的 Key。
	// Field 为帖子 ID，Value 为帖子摘要 JSON。
	TrendingPostsHashKey = "trending_posts"
)
