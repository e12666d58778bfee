package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// CommentRepository 定义了评论数据在 MySQL 中的持久化操作接口。
type CommentRepository interface {
	// CreateComment 持久化一条新评论。
	CreateComment(ctx context.Context, comment *entities.Comment) error

	// ListCommentsByPostID 按创建时间降序返回指定帖子的全部评论。
	ListCommentsByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error)

	// CountCommentsByPostIDs 批量统计多个帖子的评论数。
	// - 没有评论的帖子不会出现在结果映射中。
	CountCommentsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)

	// DeleteComment 删除指定评论，authorID 用于限定只有评论作者本人可删。
	// - 未找到或非本人评论时返回 commonerrors.ErrRepoNotFound。
	DeleteComment(ctx context.Context, commentID uint64, authorID string) error

	// DeleteCommentsByPostID 删除指定帖子下的全部评论，随帖子删除一起在事务内执行。
	DeleteCommentsByPostID(ctx context.Context, db *gorm.DB, postID uint64) error
}

// commentRepository 是 CommentRepository 接口针对 MySQL 的具体实现。
type commentRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCommentRepository 是 commentRepository 的构造函数。
func NewCommentRepository(db *gorm.DB, logger *core.ZapLogger) CommentRepository {
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment 实现评论的数据库插入操作。
func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return nil
}

// ListCommentsByPostID 实现获取帖子评论列表，最新的排在最前。
func (r *commentRepository) ListCommentsByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error) {
	var comments []*entities.Comment

	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").Order("id DESC").
		Find(&comments).Error
	if err != nil {
		r.logger.Error("获取帖子评论列表数据库查询失败",
			zap.Error(err),
			zap.Uint64("postID", postID),
		)
		return nil, err
	}

	return comments, nil
}

// CountCommentsByPostIDs 实现按帖子批量统计评论数。
func (r *commentRepository) CountCommentsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	// 单条 GROUP BY 查询取齐所有帖子的计数，避免逐帖 COUNT。
	var rows []struct {
		PostID uint64
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("批量统计评论数数据库查询失败", zap.Error(err), zap.Int("postCount", len(postIDs)))
		return nil, err
	}

	for _, row := range rows {
		result[row.PostID] = row.Count
	}
	return result, nil
}

// DeleteComment 实现评论的删除，仅允许作者本人删除。
func (r *commentRepository) DeleteComment(ctx context.Context, commentID uint64, authorID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", commentID, authorID).
		Delete(&entities.Comment{})

	if result.Error != nil {
		r.logger.Error("删除评论数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("commentID", commentID),
		)
		return result.Error
	}

	// 不区分"评论不存在"与"不是评论作者"，统一按未找到处理。
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}

	return nil
}

// DeleteCommentsByPostID 实现删除帖子下的全部评论。
func (r *commentRepository) DeleteCommentsByPostID(ctx context.Context, db *gorm.DB, postID uint64) error {
	result := db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&entities.Comment{})
	if result.Error != nil {
		r.logger.Error("删除帖子全部评论数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("postID", postID),
		)
		return result.Error
	}
	return nil
}
