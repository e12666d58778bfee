package enums

// PostStatus 帖子状态枚举：0=草稿, 1=已发布
// - 草稿仅作者本人可见；已发布对所有人可见。
// - 状态机是单向的：草稿可以发布，已发布不会回退为草稿。
type PostStatus int

const (
	Draft     PostStatus = 0 // 草稿
	Published PostStatus = 1 // 已发布
)

// String 返回状态的持久化/展示名称。
func (s PostStatus) String() string {
	switch s {
	case Draft:
		return "draft"
	case Published:
		return "published"
	default:
		return "unknown"
	}
}

// IsValid 校验枚举值是否在已定义范围内。
func (s PostStatus) IsValid() bool {
	return s == Draft || s == Published
}
