package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// CommentVO 定义了评论的响应数据结构
type CommentVO struct {
	ID           uint64    `json:"id"`            // 评论ID
	PostID       uint64    `json:"post_id"`       // 所属帖子ID
	AuthorID     string    `json:"author_id"`     // 评论作者ID
	AuthorName   string    `json:"author_name"`   // 评论作者显示名称
	AuthorAvatar string    `json:"author_avatar"` // 评论作者头像 URL
	Content      string    `json:"content"`       // 评论内容
	CreatedAt    time.Time `json:"created_at"`    // 创建时间
}

// CommentListVO 定义了帖子评论区的响应结构（按创建时间倒序）。
type CommentListVO struct {
	Comments []*CommentVO `json:"comments"` // 评论列表
	Total    int64        `json:"total"`    // 评论总数
}

// MapCommentsToCommentVOs 将评论实体列表转换为响应VO列表。
// - authors: 以作者ID为键的批量资料查询结果。
func MapCommentsToCommentVOs(comments []*entities.Comment, authors map[string]*entities.User) []*CommentVO {
	if len(comments) == 0 {
		return []*CommentVO{}
	}

	vos := make([]*CommentVO, 0, len(comments))
	for _, comment := range comments {
		if comment == nil {
			continue
		}
		item := &CommentVO{
			ID:        comment.ID,
			PostID:    comment.PostID,
			AuthorID:  comment.AuthorID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if author, ok := authors[comment.AuthorID]; ok && author != nil {
			item.AuthorName = author.Name
			item.AuthorAvatar = author.AvatarURL
		}
		vos = append(vos, item)
	}
	return vos
}
