package entities

import "time"

// Like 点赞实体
// - (post, user) 对全局唯一，由复合唯一索引保证
// - 不使用软删除：取消点赞直接删行，否则唯一索引会挡住再次点赞
type Like struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	// 被点赞的帖子ID
	PostID uint64 `gorm:"type:bigint;not null;uniqueIndex:idx_like_post_user"`

	// 点赞用户ID
	UserID string `gorm:"type:char(36);not null;uniqueIndex:idx_like_post_user"`

	CreatedAt time.Time
}
