package vo

// PostStatsVO 定义了单个帖子的统计数据结构（用于作者后台的图表）。
type PostStatsVO struct {
	PostID   uint64 `json:"post_id"`  // 帖子ID
	Title    string `json:"title"`    // 帖子标题（超长时由前端截断展示）
	Views    int64  `json:"views"`    // 浏览量
	Likes    int64  `json:"likes"`    // 点赞数
	Comments int64  `json:"comments"` // 评论数
}

// EngagementPointVO 定义了按天聚合的互动曲线上的一个点。
// - Engagement = 当天发布帖子累计的点赞数 + 评论数
type EngagementPointVO struct {
	Date       string `json:"date"`       // 日期，格式 YYYY-MM-DD
	Views      int64  `json:"views"`      // 浏览量合计
	Engagement int64  `json:"engagement"` // 互动量合计
}

// AnalyticsVO 定义了作者数据面板的响应结构。
type AnalyticsVO struct {
	TotalViews    int64                `json:"total_views"`    // 浏览总量
	TotalLikes    int64                `json:"total_likes"`    // 点赞总量
	TotalComments int64                `json:"total_comments"` // 评论总量
	TotalPosts    int64                `json:"total_posts"`    // 帖子总数
	Posts         []*PostStatsVO       `json:"posts"`          // 单帖统计列表
	Engagement    []*EngagementPointVO `json:"engagement"`     // 按天聚合的互动曲线（按日期升序）
}
