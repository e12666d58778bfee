package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// FeedPageResponseWrapper 对应 response.APIResponse[vo.FeedPageVO]
type FeedPageResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    FeedPageVO `json:"data"` // 使用具体的 vo.FeedPageVO
}

// PostResponseWrapper 对应 response.APIResponse[vo.PostVO]
type PostResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    PostVO `json:"data"` // 使用具体的 vo.PostVO
}

// DraftSaveResponseWrapper 对应 response.APIResponse[vo.DraftSaveVO]
type DraftSaveResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    DraftSaveVO `json:"data"`
}

// CommentListResponseWrapper 对应 response.APIResponse[vo.CommentListVO]
type CommentListResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    CommentListVO `json:"data"`
}

// SessionResponseWrapper 对应 response.APIResponse[vo.SessionVO]
type SessionResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    SessionVO `json:"data"`
}

// ProfileResponseWrapper 对应 response.APIResponse[vo.ProfileVO]
type ProfileResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    ProfileVO `json:"data"`
}

// AnalyticsResponseWrapper 对应 response.APIResponse[vo.AnalyticsVO]
type AnalyticsResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    AnalyticsVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作（如 DELETE）可能也只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
