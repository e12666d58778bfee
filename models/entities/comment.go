package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Comment 评论实体
// - 使用场景: 帖子详情页的评论区；创建后不可编辑、不可删除
// - 表名: comments
// - 展示时按创建时间倒序排列
type Comment struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 所属帖子ID，外键，带索引以加速按帖子查询
	PostID uint64 `gorm:"type:bigint;not null;index"`

	// 评论作者ID，UUID 格式
	AuthorID string `gorm:"type:char(36);not null"`

	// 评论内容，1~5,000 字符（校验层保证）
	Content string `gorm:"type:text;not null"`
}
