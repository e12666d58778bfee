package vo

// LikeStatusVO 定义了点赞/取消点赞后的响应结构。
type LikeStatusVO struct {
	PostID    uint64 `json:"post_id"`    // 帖子ID
	Liked     bool   `json:"liked"`      // 当前用户是否已点赞
	LikeCount int64  `json:"like_count"` // 最新点赞总数
}

// FollowStatusVO 定义了关注/取关后的响应结构。
type FollowStatusVO struct {
	UserID    string `json:"user_id"`   // 被关注用户ID
	Following bool   `json:"following"` // 当前用户是否已关注
	Followers int64  `json:"followers"` // 被关注用户的最新粉丝数
}
