// Package events 定义了本服务在 Kafka 上收发的事件结构。
// 所有事件携带唯一的 EventID 与产生时间，消费侧以此做追踪与去重。
package events

import "time"

// PostEventData 是帖子事件中携带的帖子核心数据快照。
type PostEventData struct {
	ID            uint64   `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Categories    []string `json:"categories"`
	AuthorID      string   `json:"author_id"`
	CoverImageURL string   `json:"cover_image_url"`
	ViewCount     int64    `json:"view_count"`
	CreatedAt     int64    `json:"created_at"` // Unix 毫秒
	UpdatedAt     int64    `json:"updated_at"` // Unix 毫秒
}

// PostPublishedEvent 帖子发布事件，供搜索/推荐等下游同步数据。
type PostPublishedEvent struct {
	EventID   string        `json:"event_id"`
	Timestamp time.Time     `json:"timestamp"`
	Post      PostEventData `json:"post"`
}

// PostDeletedEvent 帖子删除事件。
type PostDeletedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	PostID    uint64    `json:"post_id"`
}

// CommentChangedEvent 评论变更事件。
// - 消费者收到后对该帖子的评论列表做全量重取并刷新缓存；
//   整体替换天然幂等，乱序到达无危害。
type CommentChangedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	PostID    uint64    `json:"post_id"`
	CommentID uint64    `json:"comment_id"`
}
