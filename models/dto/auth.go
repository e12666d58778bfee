package dto

// SignUpRequest 定义了注册的请求数据结构
// - 字段级的完整规则（邮箱格式、密码复杂度等）在 validation 包中统一校验，
//   binding 标签只做最基本的存在性检查。
type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`     // 显示名称，必填
	Email    string `json:"email" binding:"required"`    // 邮箱，必填
	Password string `json:"password" binding:"required"` // 密码，必填
}

// SignInRequest 定义了登录的请求数据结构
// - 登录时密码只要求非空，不做复杂度检查
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`    // 邮箱，必填
	Password string `json:"password" binding:"required"` // 密码，必填
}
