package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// LikeRepository 定义了点赞数据在 MySQL 中的持久化操作接口。
type LikeRepository interface {
	// AddLike 记录一次点赞。
	// - (post_id, user_id) 上有唯一索引，重复点赞被静默忽略，保证幂等。
	AddLike(ctx context.Context, postID uint64, userID string) error

	// RemoveLike 取消点赞。取消不存在的点赞静默成功。
	RemoveLike(ctx context.Context, postID uint64, userID string) error

	// HasLiked 判断用户是否已点赞指定帖子。
	HasLiked(ctx context.Context, postID uint64, userID string) (bool, error)

	// CountLikesByPostIDs 批量统计多个帖子的点赞数。
	// - 没有点赞的帖子不会出现在结果映射中。
	CountLikesByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)

	// ListLikedPostIDs 返回用户在给定帖子集合中点赞过的帖子 ID 集合。
	// - 信息流渲染时用它一次取齐当前用户的点赞状态。
	ListLikedPostIDs(ctx context.Context, userID string, postIDs []uint64) (map[uint64]bool, error)

	// DeleteLikesByPostID 删除指定帖子的全部点赞，随帖子删除一起在事务内执行。
	DeleteLikesByPostID(ctx context.Context, db *gorm.DB, postID uint64) error
}

// likeRepository 是 LikeRepository 接口针对 MySQL 的具体实现。
type likeRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewLikeRepository 是 likeRepository 的构造函数。
func NewLikeRepository(db *gorm.DB, logger *core.ZapLogger) LikeRepository {
	return &likeRepository{
		db:     db,
		logger: logger,
	}
}

// AddLike 实现点赞插入，唯一索引冲突时不报错。
func (r *likeRepository) AddLike(ctx context.Context, postID uint64, userID string) error {
	like := &entities.Like{
		PostID: postID,
		UserID: userID,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like).Error
	if err != nil {
		r.logger.Error("点赞插入数据库操作失败",
			zap.Error(err),
			zap.Uint64("postID", postID),
			zap.String("userID", userID),
		)
		return err
	}

	return nil
}

// RemoveLike 实现取消点赞。
func (r *likeRepository) RemoveLike(ctx context.Context, postID uint64, userID string) error {
	result := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&entities.Like{})
	if result.Error != nil {
		r.logger.Error("取消点赞数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("postID", postID),
			zap.String("userID", userID),
		)
		return result.Error
	}
	// RowsAffected 为 0 表示本来就没点过赞，视为成功。
	return nil
}

// HasLiked 实现点赞状态查询。
func (r *likeRepository) HasLiked(ctx context.Context, postID uint64, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("查询点赞状态数据库操作失败",
			zap.Error(err),
			zap.Uint64("postID", postID),
			zap.String("userID", userID),
		)
		return false, err
	}
	return count > 0, nil
}

// CountLikesByPostIDs 实现按帖子批量统计点赞数。
func (r *likeRepository) CountLikesByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		PostID uint64
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("批量统计点赞数数据库查询失败", zap.Error(err), zap.Int("postCount", len(postIDs)))
		return nil, err
	}

	for _, row := range rows {
		result[row.PostID] = row.Count
	}
	return result, nil
}

// ListLikedPostIDs 实现查询用户在帖子集合中的点赞记录。
func (r *likeRepository) ListLikedPostIDs(ctx context.Context, userID string, postIDs []uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	var likedIDs []uint64
	err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &likedIDs).Error
	if err != nil {
		r.logger.Error("查询用户点赞集合数据库操作失败",
			zap.Error(err),
			zap.String("userID", userID),
		)
		return nil, err
	}

	for _, id := range likedIDs {
		result[id] = true
	}
	return result, nil
}

// DeleteLikesByPostID 实现删除帖子的全部点赞记录。
func (r *likeRepository) DeleteLikesByPostID(ctx context.Context, db *gorm.DB, postID uint64) error {
	result := db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&entities.Like{})
	if result.Error != nil {
		r.logger.Error("删除帖子全部点赞数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("postID", postID),
		)
		return result.Error
	}
	return nil
}
