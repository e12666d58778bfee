package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// FollowRepository 定义了关注关系在 MySQL 中的持久化操作接口。
// 自关注校验属于业务规则，由服务层完成，仓库层不重复判断。
type FollowRepository interface {
	// CreateFollow 记录一条关注关系，重复关注被静默忽略，保证幂等。
	CreateFollow(ctx context.Context, followerID, followingID string) error

	// DeleteFollow 解除关注关系，解除不存在的关系静默成功。
	DeleteFollow(ctx context.Context, followerID, followingID string) error

	// IsFollowing 判断 follower 是否已关注 following。
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)

	// CountFollowers 统计关注某用户的人数。
	CountFollowers(ctx context.Context, userID string) (int64, error)

	// CountFollowing 统计某用户关注的人数。
	CountFollowing(ctx context.Context, userID string) (int64, error)

	// ListFollowingIDs 返回某用户关注的全部用户 ID，用于"仅看我关注的人"信息流。
	ListFollowingIDs(ctx context.Context, followerID string) ([]string, error)
}

// followRepository 是 FollowRepository 接口针对 MySQL 的具体实现。
type followRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewFollowRepository 是 followRepository 的构造函数。
func NewFollowRepository(db *gorm.DB, logger *core.ZapLogger) FollowRepository {
	return &followRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFollow 实现关注关系插入，唯一索引冲突时不报错。
func (r *followRepository) CreateFollow(ctx context.Context, followerID, followingID string) error {
	follow := &entities.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(follow).Error
	if err != nil {
		r.logger.Error("关注关系插入数据库操作失败",
			zap.Error(err),
			zap.String("followerID", followerID),
			zap.String("followingID", followingID),
		)
		return err
	}

	return nil
}

// DeleteFollow 实现解除关注关系。
func (r *followRepository) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&entities.Follow{})
	if result.Error != nil {
		r.logger.Error("解除关注关系数据库操作失败",
			zap.Error(result.Error),
			zap.String("followerID", followerID),
			zap.String("followingID", followingID),
		)
		return result.Error
	}
	// RowsAffected 为 0 表示本来就没关注，视为成功。
	return nil
}

// IsFollowing 实现关注状态查询。
func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("查询关注状态数据库操作失败",
			zap.Error(err),
			zap.String("followerID", followerID),
			zap.String("followingID", followingID),
		)
		return false, err
	}
	return count > 0, nil
}

// CountFollowers 实现粉丝数统计。
func (r *followRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("统计粉丝数数据库操作失败", zap.Error(err), zap.String("userID", userID))
		return 0, err
	}
	return count, nil
}

// CountFollowing 实现关注数统计。
func (r *followRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("统计关注数数据库操作失败", zap.Error(err), zap.String("userID", userID))
		return 0, err
	}
	return count, nil
}

// ListFollowingIDs 实现获取关注列表的用户 ID 集合。
func (r *followRepository) ListFollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	if err != nil {
		r.logger.Error("获取关注列表数据库操作失败", zap.Error(err), zap.String("followerID", followerID))
		return nil, err
	}
	return ids, nil
}
