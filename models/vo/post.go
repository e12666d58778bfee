package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
)

// PostVO 定义了帖子在信息流与详情页的响应数据结构
type PostVO struct {
	ID            uint64           `json:"id"`              // 帖子ID
	Title         string           `json:"title"`           // 帖子标题
	Content       string           `json:"content"`         // 帖子正文
	Categories    []string         `json:"categories"`      // 有效分类列表（新旧数据形态统一后的结果）
	AuthorID      string           `json:"author_id"`       // 作者ID
	AuthorName    string           `json:"author_name"`     // 作者显示名称（批量联查资料表得到）
	AuthorAvatar  string           `json:"author_avatar"`   // 作者头像 URL
	CoverImageURL string           `json:"cover_image_url"` // 封面图 URL
	Status        enums.PostStatus `json:"status"`          // 帖子状态，0=草稿, 1=已发布
	ViewCount     int64            `json:"view_count"`      // 浏览量
	LikeCount     int64            `json:"like_count"`      // 点赞数
	CommentCount  int64            `json:"comment_count"`   // 评论数
	LikedByViewer bool             `json:"liked_by_viewer"` // 当前登录用户是否已点赞
	CreatedAt     time.Time        `json:"created_at"`      // 创建时间
	UpdatedAt     time.Time        `json:"updated_at"`      // 更新时间
}

// FeedPageVO 定义了信息流页面的响应结构。
// - Facets 以 "All" 开头，随后按首次出现顺序列出可选分类。
type FeedPageVO struct {
	Posts  []*PostVO `json:"posts"`  // 过滤后的可见帖子列表，保持输入顺序（按创建时间倒序）
	Facets []string  `json:"facets"` // 分类分面列表
}

// DraftSaveVO 定义了草稿保存动作的响应结构。
// - 首次自动保存会分配帖子ID，编辑器据此把后续保存指向同一条记录。
type DraftSaveVO struct {
	PostID      uint64    `json:"post_id"`       // 草稿对应的帖子ID
	LastSavedAt time.Time `json:"last_saved_at"` // 本次保存落库时间

	// 服务端建议的下一次自动保存间隔（秒），来自配置，编辑器据此调度定时器
	NextAutosaveSeconds int `json:"next_autosave_seconds,omitempty"`
}

// AuthorStat 聚合单个帖子上的互动计数，供 VO 组装使用。
type AuthorStat struct {
	LikeCount    int64
	CommentCount int64
}

// MapPostsToPostVOs 是一个辅助函数，用于将帖子实体列表转换为响应VO列表。
// - authors: 以作者ID为键的批量资料查询结果（避免每帖一次的 N+1 查询）。
// - stats: 以帖子ID为键的互动计数，允许为 nil（如草稿列表不展示计数）。
func MapPostsToPostVOs(posts []*entities.Post, authors map[string]*entities.User, stats map[uint64]AuthorStat) []*PostVO {
	if len(posts) == 0 {
		return []*PostVO{} // 返回空切片而不是nil，便于前端处理
	}

	vos := make([]*PostVO, 0, len(posts))
	for _, post := range posts {
		if post == nil { // 安全检查，尽管不太可能发生
			continue
		}
		item := &PostVO{
			ID:            post.ID,
			Title:         post.Title,
			Content:       post.Content,
			Categories:    post.EffectiveCategories(),
			AuthorID:      post.AuthorID,
			CoverImageURL: post.CoverImageURL,
			Status:        post.Status,
			ViewCount:     post.ViewCount,
			CreatedAt:     post.CreatedAt,
			UpdatedAt:     post.UpdatedAt,
		}
		if author, ok := authors[post.AuthorID]; ok && author != nil {
			item.AuthorName = author.Name
			item.AuthorAvatar = author.AvatarURL
		}
		if stats != nil {
			if stat, ok := stats[post.ID]; ok {
				item.LikeCount = stat.LikeCount
				item.CommentCount = stat.CommentCount
			}
		}
		vos = append(vos, item)
	}
	return vos
}
