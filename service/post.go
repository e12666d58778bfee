package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/events"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/mq/producer"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/repo/redis"
	"github.com/Xushengqwer/blog_service/validation"
)

// PostService 定义了帖子生命周期（草稿、发布、阅读、删除）的业务逻辑接口。
type PostService interface {
	// SaveDraft 保存草稿。
	// - postID 为 nil 时新建草稿并返回新 ID，后续保存沿用该 ID。
	// - 宽松校验：标题、正文、至少一个分类非空即可，不检查长度上限之外的规则。
	// - category 列始终写入 categories[0]。
	SaveDraft(ctx context.Context, authorID string, postID *uint64, req *dto.AutosaveDraftRequest) (*vo.DraftSaveVO, error)

	// AutosaveDraft 周期性自动保存草稿，比 SaveDraft 更宽松：
	// 只要求标题与正文非空，分类可以为空（主分类回退为 "Uncategorized"）。
	// 已发布的帖子在编辑器内继续自动保存时保持已发布状态。
	AutosaveDraft(ctx context.Context, authorID string, postID *uint64, req *dto.AutosaveDraftRequest) (*vo.DraftSaveVO, error)

	// PublishPost 发布帖子（新建或把草稿转为已发布）。
	// - 先做完整校验，任何字段不合法都直接返回校验错误，不产生任何写入。
	// - 成功后异步发送帖子发布事件。
	PublishPost(ctx context.Context, authorID string, postID *uint64, req *dto.SavePostRequest) (*vo.PostVO, error)

	// GetPostForEdit 获取帖子用于编辑器回填。
	// - 仅作者本人可访问；帖子不存在与非本人所有统一返回 commonerrors.ErrRepoNotFound，
	//   不向调用方暴露帖子归属信息。
	GetPostForEdit(ctx context.Context, authorID string, postID uint64) (*vo.PostVO, error)

	// GetPostDetail 获取已发布帖子的详情。
	// - 草稿只有作者本人可见。
	// - viewerID 非空时异步增加浏览计数（Bloom Filter 防刷）。
	GetPostDetail(ctx context.Context, postID uint64, viewerID string) (*vo.PostVO, error)

	// DeletePost 删除帖子及其评论、点赞。
	// - 仅作者本人可删；成功后异步发送帖子删除事件。
	DeletePost(ctx context.Context, authorID string, postID uint64) error

	// UploadCoverImage 上传封面图到对象存储，返回公开访问 URL。
	UploadCoverImage(ctx context.Context, authorID string, fileHeader *multipart.FileHeader) (string, error)
}

// postService 是 PostService 接口的具体实现。
type postService struct {
	db           *gorm.DB
	postRepo     mysql.PostRepository
	userRepo     mysql.UserRepository
	commentRepo  mysql.CommentRepository
	likeRepo     mysql.LikeRepository
	postViewRepo redis.PostViewRepository
	cosClient    dependencies.COSClientInterface
	kafkaSvc     *producer.KafkaProducer
	autosaveCfg  config.AutosaveConfig
	logger       *core.ZapLogger
}

// NewPostService 是 postService 的构造函数，通过依赖注入初始化服务实例。
func NewPostService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	userRepo mysql.UserRepository,
	commentRepo mysql.CommentRepository,
	likeRepo mysql.LikeRepository,
	postViewRepo redis.PostViewRepository,
	cosClient dependencies.COSClientInterface,
	kafkaSvc *producer.KafkaProducer,
	autosaveCfg config.AutosaveConfig,
	logger *core.ZapLogger,
) PostService {
	return &postService{
		db:           db,
		postRepo:     postRepo,
		userRepo:     userRepo,
		commentRepo:  commentRepo,
		likeRepo:     likeRepo,
		postViewRepo: postViewRepo,
		cosClient:    cosClient,
		kafkaSvc:     kafkaSvc,
		autosaveCfg:  autosaveCfg,
		logger:       logger,
	}
}

// nextAutosaveSeconds 返回响应中携带的自动保存间隔建议，配置缺省时退回 30 秒。
func (s *postService) nextAutosaveSeconds() int {
	if s.autosaveCfg.IntervalSeconds > 0 {
		return s.autosaveCfg.IntervalSeconds
	}
	return 30
}

// checkDraftSavable 是草稿保存的宽松校验：标题、正文、至少一个分类非空。
func checkDraftSavable(req *dto.AutosaveDraftRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return &validation.ValidationError{Field: "title", Message: "Title cannot be empty"}
	}
	if strings.TrimSpace(req.Content) == "" {
		return &validation.ValidationError{Field: "content", Message: "Content cannot be empty"}
	}
	hasCategory := false
	for _, c := range req.Categories {
		if strings.TrimSpace(c) != "" {
			hasCategory = true
			break
		}
	}
	if !hasCategory {
		return &validation.ValidationError{Field: "categories", Message: "At least one category is required"}
	}
	return nil
}

// getOwnedPost 取回帖子并校验归属。
// 帖子不存在与非本人所有统一折叠为 ErrRepoNotFound。
func (s *postService) getOwnedPost(ctx context.Context, authorID string, postID uint64) (*entities.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != authorID {
		s.logger.Warn("用户尝试访问非本人的帖子",
			zap.Uint64("postID", postID),
			zap.String("userID", authorID),
		)
		return nil, commonerrors.ErrRepoNotFound
	}
	return post, nil
}

// SaveDraft 实现草稿保存。
func (s *postService) SaveDraft(ctx context.Context, authorID string, postID *uint64, req *dto.AutosaveDraftRequest) (*vo.DraftSaveVO, error) {
	if err := checkDraftSavable(req); err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(req.Categories))
	for _, c := range req.Categories {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}

	if postID == nil {
		post := &entities.Post{
			Title:         strings.TrimSpace(req.Title),
			Content:       strings.TrimSpace(req.Content),
			Category:      categories[0],
			Categories:    categories,
			CoverImageURL: req.CoverImageURL,
			AuthorID:      authorID,
			Status:        enums.Draft,
		}
		if err := s.postRepo.CreatePost(ctx, s.db, post); err != nil {
			s.logger.Error("新建草稿失败", zap.Error(err), zap.String("authorID", authorID))
			return nil, fmt.Errorf("新建草稿失败: %w", err)
		}
		return &vo.DraftSaveVO{PostID: post.ID, LastSavedAt: post.UpdatedAt, NextAutosaveSeconds: s.nextAutosaveSeconds()}, nil
	}

	post, err := s.getOwnedPost(ctx, authorID, *postID)
	if err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Content = strings.TrimSpace(req.Content)
	post.Category = categories[0]
	post.Categories = categories
	post.CoverImageURL = req.CoverImageURL
	// 已发布的帖子继续保存时保持已发布状态，草稿保持草稿。
	if err := s.postRepo.UpdatePost(ctx, s.db, post); err != nil {
		return nil, fmt.Errorf("保存草稿失败: %w", err)
	}

	return &vo.DraftSaveVO{PostID: post.ID, LastSavedAt: time.Now(), NextAutosaveSeconds: s.nextAutosaveSeconds()}, nil
}

// DefaultDraftCategory 是自动保存时分类为空的回退主分类。
const DefaultDraftCategory = "Uncategorized"

// AutosaveDraft 实现自动保存。
func (s *postService) AutosaveDraft(ctx context.Context, authorID string, postID *uint64, req *dto.AutosaveDraftRequest) (*vo.DraftSaveVO, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, &validation.ValidationError{Field: "title", Message: "Title and content are required"}
	}

	categories := make([]string, 0, len(req.Categories))
	for _, c := range req.Categories {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}
	mainCategory := DefaultDraftCategory
	if len(categories) > 0 {
		mainCategory = categories[0]
	}

	if postID == nil {
		post := &entities.Post{
			Title:         title,
			Content:       content,
			Category:      mainCategory,
			Categories:    categories,
			CoverImageURL: req.CoverImageURL,
			AuthorID:      authorID,
			Status:        enums.Draft,
		}
		if err := s.postRepo.CreatePost(ctx, s.db, post); err != nil {
			s.logger.Error("自动保存新建草稿失败", zap.Error(err), zap.String("authorID", authorID))
			return nil, fmt.Errorf("自动保存草稿失败: %w", err)
		}
		return &vo.DraftSaveVO{PostID: post.ID, LastSavedAt: post.UpdatedAt, NextAutosaveSeconds: s.nextAutosaveSeconds()}, nil
	}

	post, err := s.getOwnedPost(ctx, authorID, *postID)
	if err != nil {
		return nil, err
	}
	post.Title = title
	post.Content = content
	post.Category = mainCategory
	post.Categories = categories
	post.CoverImageURL = req.CoverImageURL
	if err := s.postRepo.UpdatePost(ctx, s.db, post); err != nil {
		return nil, fmt.Errorf("自动保存草稿失败: %w", err)
	}
	return &vo.DraftSaveVO{PostID: post.ID, LastSavedAt: time.Now(), NextAutosaveSeconds: s.nextAutosaveSeconds()}, nil
}

// PublishPost 实现帖子发布。
func (s *postService) PublishPost(ctx context.Context, authorID string, postID *uint64, req *dto.SavePostRequest) (*vo.PostVO, error) {
	// 完整校验必须在任何写入之前完成。
	if vErr := validation.CheckPost(req); vErr != nil {
		return nil, vErr
	}

	var post *entities.Post
	if postID == nil {
		post = &entities.Post{
			Title:         req.Title,
			Content:       req.Content,
			Category:      req.Categories[0],
			Categories:    req.Categories,
			CoverImageURL: req.CoverImageURL,
			AuthorID:      authorID,
			Status:        enums.Published,
		}
		if err := s.postRepo.CreatePost(ctx, s.db, post); err != nil {
			s.logger.Error("发布新帖子失败", zap.Error(err), zap.String("authorID", authorID))
			return nil, fmt.Errorf("发布帖子失败: %w", err)
		}
	} else {
		owned, err := s.getOwnedPost(ctx, authorID, *postID)
		if err != nil {
			return nil, err
		}
		post = owned
		post.Title = req.Title
		post.Content = req.Content
		post.Category = req.Categories[0]
		post.Categories = req.Categories
		post.CoverImageURL = req.CoverImageURL
		post.Status = enums.Published
		if err := s.postRepo.UpdatePost(ctx, s.db, post); err != nil {
			return nil, fmt.Errorf("发布帖子失败: %w", err)
		}
	}

	// 异步发送发布事件，失败只记录日志，不影响主流程。
	eventData := events.PostEventData{
		ID:         post.ID,
		Title:      post.Title,
		AuthorID:   post.AuthorID,
		Categories: post.EffectiveCategories(),
		CreatedAt:  post.CreatedAt.UnixMilli(),
	}
	go func(data events.PostEventData) {
		bgCtx := context.Background()
		if kafkaErr := s.kafkaSvc.SendPostPublishedEvent(bgCtx, data); kafkaErr != nil {
			s.logger.Error("发送帖子发布事件失败", zap.Error(kafkaErr), zap.Uint64("post_id", data.ID))
		}
	}(eventData)

	return s.buildPostVO(ctx, post, authorID)
}

// GetPostForEdit 实现编辑器回填。
func (s *postService) GetPostForEdit(ctx context.Context, authorID string, postID uint64) (*vo.PostVO, error) {
	post, err := s.getOwnedPost(ctx, authorID, postID)
	if err != nil {
		return nil, err
	}
	return s.buildPostVO(ctx, post, authorID)
}

// GetPostDetail 实现帖子详情读取。
func (s *postService) GetPostDetail(ctx context.Context, postID uint64, viewerID string) (*vo.PostVO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Status != enums.Published && post.AuthorID != viewerID {
		// 草稿对其他人不可见，与不存在同样处理。
		return nil, commonerrors.ErrRepoNotFound
	}

	// 登录用户的浏览异步计数，Bloom Filter 去重。
	if viewerID != "" && post.Status == enums.Published {
		go func(id uint64, uid string) {
			bgCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if viewErr := s.postViewRepo.IncrementViewCount(bgCtx, id, uid); viewErr != nil {
				s.logger.Warn("增加帖子浏览量失败", zap.Error(viewErr), zap.Uint64("postID", id))
			}
		}(post.ID, viewerID)
	}

	return s.buildPostVO(ctx, post, viewerID)
}

// DeletePost 实现帖子删除。
func (s *postService) DeletePost(ctx context.Context, authorID string, postID uint64) error {
	if _, err := s.getOwnedPost(ctx, authorID, postID); err != nil {
		return err
	}

	// 帖子、评论、点赞在同一事务内删除。
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.commentRepo.DeleteCommentsByPostID(ctx, tx, postID); repoErr != nil {
			return fmt.Errorf("删除帖子评论失败: %w", repoErr)
		}
		if repoErr := s.likeRepo.DeleteLikesByPostID(ctx, tx, postID); repoErr != nil {
			return fmt.Errorf("删除帖子点赞失败: %w", repoErr)
		}
		if repoErr := s.postRepo.DeletePost(ctx, tx, postID); repoErr != nil {
			return fmt.Errorf("删除帖子失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("删除帖子事务失败", zap.Error(err), zap.Uint64("postID", postID))
		return err
	}

	go func(id uint64) {
		bgCtx := context.Background()
		if kafkaErr := s.kafkaSvc.SendPostDeleteEvent(bgCtx, id); kafkaErr != nil {
			s.logger.Error("发送帖子删除事件失败", zap.Error(kafkaErr), zap.Uint64("post_id", id))
		}
	}(postID)

	return nil
}

// allowedCoverImageExts 封面图允许的扩展名。
var allowedCoverImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// UploadCoverImage 实现封面图上传。
func (s *postService) UploadCoverImage(ctx context.Context, authorID string, fileHeader *multipart.FileHeader) (string, error) {
	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedCoverImageExts[extension] {
		return "", &validation.ValidationError{Field: "coverImage", Message: "Unsupported image format"}
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("打开封面图文件失败", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return "", fmt.Errorf("打开封面图文件失败: %w", err)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// 对象键规则: blog/covers/YYYYMMDD/userID_uuid.ext
	objectKey := fmt.Sprintf("%s%s/%s_%s%s",
		constant.COSObjectKeyPrefixCoverImages,
		time.Now().Format("20060102"),
		authorID,
		uuid.NewString(),
		extension,
	)

	imageURL, err := s.cosClient.UploadFile(ctx, objectKey, file, fileHeader.Size, contentType)
	if err != nil {
		s.logger.Error("上传封面图到 COS 失败", zap.String("objectKey", objectKey), zap.Error(err))
		return "", fmt.Errorf("上传封面图失败: %w", err)
	}

	return imageURL, nil
}

// buildPostVO 取齐作者资料与互动计数，拼装单帖视图。
func (s *postService) buildPostVO(ctx context.Context, post *entities.Post, viewerID string) (*vo.PostVO, error) {
	authors, err := s.userRepo.ListUsersByIDs(ctx, []string{post.AuthorID})
	if err != nil {
		return nil, fmt.Errorf("获取作者资料失败: %w", err)
	}

	likeCounts, err := s.likeRepo.CountLikesByPostIDs(ctx, []uint64{post.ID})
	if err != nil {
		return nil, fmt.Errorf("统计点赞数失败: %w", err)
	}
	commentCounts, err := s.commentRepo.CountCommentsByPostIDs(ctx, []uint64{post.ID})
	if err != nil {
		return nil, fmt.Errorf("统计评论数失败: %w", err)
	}

	stats := map[uint64]vo.AuthorStat{
		post.ID: {LikeCount: likeCounts[post.ID], CommentCount: commentCounts[post.ID]},
	}
	result := vo.MapPostsToPostVOs([]*entities.Post{post}, authors, stats)
	if len(result) == 0 {
		return nil, errors.New("拼装帖子视图失败")
	}

	single := result[0]
	if viewerID != "" {
		liked, likeErr := s.likeRepo.HasLiked(ctx, post.ID, viewerID)
		if likeErr != nil {
			s.logger.Warn("查询点赞状态失败", zap.Error(likeErr), zap.Uint64("postID", post.ID))
		} else {
			single.LikedByViewer = liked
		}
	}

	return single, nil
}
