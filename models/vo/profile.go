package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// ProfileVO 定义了用户资料的响应数据结构
// - 不包含邮箱与密码哈希等敏感字段
type ProfileVO struct {
	ID        string    `json:"id"`         // 用户ID
	Name      string    `json:"name"`       // 显示名称
	Bio       string    `json:"bio"`        // 个人简介
	AvatarURL string    `json:"avatar_url"` // 头像 URL
	Followers int64     `json:"followers"`  // 粉丝数
	Following int64     `json:"following"`  // 关注数
	CreatedAt time.Time `json:"created_at"` // 注册时间

	// FollowedByViewer 当前查看者是否已关注该用户，未登录时恒为 false。
	FollowedByViewer bool `json:"followed_by_viewer"`
}

// SessionVO 定义了登录/注册成功后的响应结构。
type SessionVO struct {
	Token string    `json:"token"` // 会话令牌，后续请求放入 Authorization 头
	User  ProfileVO `json:"user"`  // 当前用户资料
}

// NewProfileVO 从用户实体构建资料VO（计数由调用方补充）。
func NewProfileVO(user *entities.User) ProfileVO {
	if user == nil {
		return ProfileVO{}
	}
	return ProfileVO{
		ID:        user.ID,
		Name:      user.Name,
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}
