package entities

import "time"

// Follow 关注关系实体
// - (follower, following) 对全局唯一，由复合唯一索引保证
// - 仅 follower 本人可创建/解除自己的关注
// - 自关注在服务层被拒绝（不只靠前端禁用按钮）
// - 不使用软删除：取关直接删行，否则唯一索引会挡住再次关注
type Follow struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	// 发起关注的用户ID
	FollowerID string `gorm:"type:char(36);not null;uniqueIndex:idx_follow_pair"`

	// 被关注的用户ID
	FollowingID string `gorm:"type:char(36);not null;uniqueIndex:idx_follow_pair;index"`

	CreatedAt time.Time
}
