package dto

// SavePostRequest 定义了保存帖子（发布 / 保存草稿 / 更新）的请求数据结构
// - 发布时由 validation.CheckPost 做完整的字段校验；
//   保存草稿时只做放宽后的非空检查，允许不完整的内容先落库。
type SavePostRequest struct {
	Title         string   `json:"title" binding:"required"`   // 帖子标题
	Content       string   `json:"content" binding:"required"` // 帖子正文
	Categories    []string `json:"categories"`                 // 分类列表，发布时要求 1~5 个
	CoverImageURL string   `json:"cover_image_url"`            // 封面图 URL，可选
}

// AutosaveDraftRequest 定义了编辑器上报草稿快照的请求数据结构
// - 自动保存允许标题/正文暂时为空（此时本次快照被忽略，不落库），
//   因此这里不加 required 约束。
type AutosaveDraftRequest struct {
	Title         string   `json:"title"`           // 草稿标题
	Content       string   `json:"content"`         // 草稿正文
	Categories    []string `json:"categories"`      // 分类列表
	CoverImageURL string   `json:"cover_image_url"` // 封面图 URL
}

// FeedQueryRequest 定义了信息流查询的请求数据结构
// - searchText 为空匹配全部；category 缺省等价于 "All"
type FeedQueryRequest struct {
	SearchText string `form:"search"`   // 搜索关键词，大小写不敏感
	Category   string `form:"category"` // 选中的分类分面，"All" 或缺省表示不过滤
	Drafts     bool   `form:"drafts"`   // true 时列出当前用户自己的草稿而非已发布帖子
}
