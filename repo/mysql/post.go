package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
)

// PostRepository 定义了帖子数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录（草稿或已发布）。
	// - 传入的 db 可以是普通连接，也可以是事务 tx。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// UpdatePost 更新指定帖子的可编辑字段。
	// - 覆盖写入 Title, Content, Category, Categories, CoverImageURL, Status。
	// - 归属校验由服务层完成，仓库层只按主键更新。
	// - 未找到记录时返回 commonerrors.ErrRepoNotFound。
	UpdatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// GetPostByID 根据单个 ID 检索帖子信息。
	// - 如果未找到帖子，返回 commonerrors.ErrRepoNotFound 错误。
	GetPostByID(ctx context.Context, id uint64) (*entities.Post, error)

	// GetPostsByIDs 批量检索帖子，结果顺序与传入 ID 的顺序一致。
	// - 不存在的 ID 会被静默跳过，调用方按返回长度判断缺失。
	GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error)

	// ListPublished 按创建时间降序返回全部已发布帖子。
	// - 信息流在服务层做内存筛选与分面统计，此处不带筛选条件。
	ListPublished(ctx context.Context) ([]*entities.Post, error)

	// ListPublishedByAuthors 按创建时间降序返回指定作者集合的已发布帖子。
	// - 用于"仅看我关注的人"信息流。
	// - authorIDs 为空时直接返回空列表，不查库。
	ListPublishedByAuthors(ctx context.Context, authorIDs []string) ([]*entities.Post, error)

	// ListDraftsByAuthor 按更新时间降序返回指定作者的草稿。
	ListDraftsByAuthor(ctx context.Context, authorID string) ([]*entities.Post, error)

	// ListByAuthor 返回指定作者的全部帖子（含草稿），用于创作数据统计。
	ListByAuthor(ctx context.Context, authorID string) ([]*entities.Post, error)

	// DeletePost 对指定帖子执行软删除。
	DeletePost(ctx context.Context, db *gorm.DB, id uint64) error
}

// postRepository 是 PostRepository 接口针对 MySQL 的具体实现。
type postRepository struct {
	db     *gorm.DB        // GORM 数据库实例
	logger *core.ZapLogger // 日志记录器实例
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *core.ZapLogger) PostRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost 实现帖子的数据库插入操作。
func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	// GORM 会自动处理 BaseModel 中的 CreatedAt 和 UpdatedAt 字段。
	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		// 在仓库层，通常直接返回数据库错误，由服务层决定如何处理或包装。
		return err
	}
	// 创建成功后，post 对象会包含 GORM 自动生成的 ID 和时间戳。
	return nil
}

// UpdatePost 覆盖更新帖子的可编辑字段。
func (r *postRepository) UpdatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	// Categories 列使用 json 序列化器，map 更新时需要手动编码。
	categoriesJSON, err := json.Marshal(post.Categories)
	if err != nil {
		return fmt.Errorf("序列化帖子分类失败: %w", err)
	}

	updateMap := map[string]interface{}{
		"title":           post.Title,
		"content":         post.Content,
		"category":        post.Category,
		"categories":      categoriesJSON,
		"cover_image_url": post.CoverImageURL,
		"status":          post.Status,
		"updated_at":      time.Now(),
	}

	result := db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ? AND deleted_at IS NULL", post.ID).
		Updates(updateMap)

	if result.Error != nil {
		r.logger.Error("更新帖子数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("postID", post.ID),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新帖子但未找到记录或记录已被删除",
			zap.Uint64("postID", post.ID),
		)
		return commonerrors.ErrRepoNotFound
	}

	return nil
}

// GetPostByID 实现根据单个 ID 获取帖子。
func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	var post entities.Post

	// First 会自动添加 "WHERE id = ?" 和 "LIMIT 1" 条件，
	// 未找到时返回 gorm.ErrRecordNotFound。
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取帖子未找到", zap.Uint64("postID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取帖子数据库查询失败", zap.Uint64("postID", id), zap.Error(err))
		return nil, err
	}

	return &post, nil
}

// GetPostsByIDs 实现按 ID 批量获取帖子，保持传入顺序。
func (r *postRepository) GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error) {
	if len(ids) == 0 {
		return []*entities.Post{}, nil
	}

	var posts []*entities.Post
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error; err != nil {
		r.logger.Error("批量获取帖子数据库查询失败", zap.Error(err), zap.Int("idCount", len(ids)))
		return nil, err
	}

	// IN 查询不保证返回顺序，按传入 ID 顺序重排。
	byID := make(map[uint64]*entities.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	ordered := make([]*entities.Post, 0, len(posts))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// ListPublished 实现获取全部已发布帖子，最新的排在最前。
func (r *postRepository) ListPublished(ctx context.Context) ([]*entities.Post, error) {
	var posts []*entities.Post

	err := r.db.WithContext(ctx).
		Where("status = ?", enums.Published).
		Order("created_at DESC").Order("id DESC").
		Find(&posts).Error
	if err != nil {
		r.logger.Error("获取已发布帖子列表数据库查询失败", zap.Error(err))
		return nil, err
	}

	return posts, nil
}

// ListPublishedByAuthors 实现获取指定作者集合的已发布帖子。
func (r *postRepository) ListPublishedByAuthors(ctx context.Context, authorIDs []string) ([]*entities.Post, error) {
	if len(authorIDs) == 0 {
		return []*entities.Post{}, nil
	}

	var posts []*entities.Post
	err := r.db.WithContext(ctx).
		Where("status = ?", enums.Published).
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").Order("id DESC").
		Find(&posts).Error
	if err != nil {
		r.logger.Error("获取关注作者帖子列表数据库查询失败",
			zap.Error(err),
			zap.Int("authorCount", len(authorIDs)),
		)
		return nil, err
	}

	return posts, nil
}

// ListDraftsByAuthor 实现获取指定作者的草稿列表，最近编辑的排在最前。
func (r *postRepository) ListDraftsByAuthor(ctx context.Context, authorID string) ([]*entities.Post, error) {
	var posts []*entities.Post

	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Where("status = ?", enums.Draft).
		Order("updated_at DESC").Order("id DESC").
		Find(&posts).Error
	if err != nil {
		r.logger.Error("获取作者草稿列表数据库查询失败",
			zap.Error(err),
			zap.String("authorID", authorID),
		)
		return nil, err
	}

	return posts, nil
}

// ListByAuthor 实现获取指定作者的全部帖子。
func (r *postRepository) ListByAuthor(ctx context.Context, authorID string) ([]*entities.Post, error) {
	var posts []*entities.Post

	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").Order("id DESC").
		Find(&posts).Error
	if err != nil {
		r.logger.Error("获取作者帖子列表数据库查询失败",
			zap.Error(err),
			zap.String("authorID", authorID),
		)
		return nil, err
	}

	return posts, nil
}

// DeletePost 实现帖子的软删除。
// db 参数是执行此操作的数据库句柄 (可以是普通连接，也可以是事务 tx)。
func (r *postRepository) DeletePost(ctx context.Context, db *gorm.DB, id uint64) error {
	// entities.Post 通过 BaseModel 嵌入了 gorm.DeletedAt 以支持软删除。
	result := db.WithContext(ctx).Delete(&entities.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
