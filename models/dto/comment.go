package dto

// CreateCommentRequest 定义了发表评论的请求数据结构
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"` // 评论内容，1~5,000 字符
}
