package dto

// UpdateProfileRequest 定义了资料编辑的请求数据结构
// - Bio 使用指针以区分 "未提供"（保持原值语义交由校验层归一为空串）与显式清空
type UpdateProfileRequest struct {
	Name string  `json:"name" binding:"required"` // 显示名称，1~100 字符
	Bio  *string `json:"bio"`                     // 个人简介，可选，最大 500 字符
}
