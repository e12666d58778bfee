package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// UserRepository 定义了用户数据在 MySQL 中的持久化操作接口。
type UserRepository interface {
	// CreateUser 持久化一个新用户，ID 由调用方生成 (UUID)。
	CreateUser(ctx context.Context, user *entities.User) error

	// GetUserByEmail 按邮箱检索用户，用于登录与注册查重。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)

	// GetUserByID 按 ID 检索用户。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetUserByID(ctx context.Context, id string) (*entities.User, error)

	// ListUsersByIDs 批量检索用户，返回以 ID 为键的映射。
	// - 不存在的 ID 不会出现在结果中，调用方自行处理缺失。
	// - 信息流、评论列表用它一次取齐作者资料，避免逐条查询。
	ListUsersByIDs(ctx context.Context, ids []string) (map[string]*entities.User, error)

	// UpdateProfile 更新用户的昵称、简介与头像地址。
	// - 未找到记录时返回 commonerrors.ErrRepoNotFound。
	UpdateProfile(ctx context.Context, id string, name string, bio string, avatarURL string) error
}

// userRepository 是 UserRepository 接口针对 MySQL 的具体实现。
type userRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *core.ZapLogger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser 实现用户的数据库插入操作。
func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// 邮箱唯一索引冲突也会落到这里，由服务层在插入前查重并兜底处理。
		return err
	}
	return nil
}

// GetUserByEmail 实现按邮箱获取用户。
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User

	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按邮箱获取用户数据库查询失败", zap.Error(err))
		return nil, err
	}

	return &user, nil
}

// GetUserByID 实现按 ID 获取用户。
func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取用户未找到", zap.String("userID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取用户数据库查询失败", zap.String("userID", id), zap.Error(err))
		return nil, err
	}

	return &user, nil
}

// ListUsersByIDs 实现按 ID 批量获取用户。
func (r *userRepository) ListUsersByIDs(ctx context.Context, ids []string) (map[string]*entities.User, error) {
	result := make(map[string]*entities.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var users []*entities.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		r.logger.Error("批量获取用户数据库查询失败", zap.Error(err), zap.Int("idCount", len(ids)))
		return nil, err
	}

	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}

// UpdateProfile 实现用户资料更新。
func (r *userRepository) UpdateProfile(ctx context.Context, id string, name string, bio string, avatarURL string) error {
	updateMap := map[string]interface{}{
		"name":       name,
		"bio":        bio,
		"avatar_url": avatarURL,
		"updated_at": time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Updates(updateMap)

	if result.Error != nil {
		r.logger.Error("更新用户资料数据库操作失败", zap.Error(result.Error), zap.String("userID", id))
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新用户资料但未找到记录", zap.String("userID", id))
		return commonerrors.ErrRepoNotFound
	}

	return nil
}
