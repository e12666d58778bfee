package entities

import (
	"time"

	"gorm.io/gorm"
)

// User 用户/个人资料实体
// - 使用场景: 注册时创建，资料编辑页更新；应用层永不删除
// - 表名: users
// - 主键为 UUID 字符串，因此不嵌入 BaseModel（BaseModel 的主键是自增 uint64）
type User struct {
	// 用户ID，UUID 格式（36个字符），注册时生成
	ID string `gorm:"type:char(36);primaryKey"`

	// 显示名称，1~100 字符（校验层保证）
	Name string `gorm:"type:varchar(100);not null"`

	// 邮箱，全局唯一，仅注册/登录时使用
	Email string `gorm:"type:varchar(255);not null;uniqueIndex"`

	// 密码哈希（bcrypt），永不以明文落库
	PasswordHash string `gorm:"type:varchar(255);not null"`

	// 个人简介，可选，最大 500 字符
	Bio string `gorm:"type:varchar(500)"`

	// 头像 URL，可选，来源于 COS 上传
	AvatarURL string `gorm:"type:varchar(1023)"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
