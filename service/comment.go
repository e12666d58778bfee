package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/mq/producer"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/blog_service/repo/redis"
	"github.com/Xushengqwer/blog_service/validation"
)

// CommentService 定义了评论的业务逻辑接口。
type CommentService interface {
	// CreateComment 在已发布的帖子下创建评论。
	// - 校验内容后落库，随后使缓存失效并发送评论变更事件，
	//   由消费者异步重建缓存。
	CreateComment(ctx context.Context, authorID string, postID uint64, req *dto.CreateCommentRequest) (*vo.CommentVO, error)

	// ListComments 返回帖子的评论列表，最新的排在最前。
	// - 优先读缓存，未命中时回源数据库并填充缓存。
	ListComments(ctx context.Context, postID uint64) (*vo.CommentListVO, error)

	// DeleteComment 删除评论，仅评论作者本人可删。
	DeleteComment(ctx context.Context, authorID string, postID uint64, commentID uint64) error

	// RefreshCommentCache 回源重建帖子的评论列表缓存。
	// - 由评论变更事件的消费者调用。
	RefreshCommentCache(ctx context.Context, postID uint64) error
}

// commentService 是 CommentService 接口的具体实现。
type commentService struct {
	commentRepo  mysql.CommentRepository
	postRepo     mysql.PostRepository
	userRepo     mysql.UserRepository
	commentCache redisRepo.CommentCache
	kafkaSvc     *producer.KafkaProducer
	logger       *core.ZapLogger
}

// NewCommentService 是 commentService 的构造函数，通过依赖注入初始化服务实例。
func NewCommentService(
	commentRepo mysql.CommentRepository,
	postRepo mysql.PostRepository,
	userRepo mysql.UserRepository,
	commentCache redisRepo.CommentCache,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) CommentService {
	return &commentService{
		commentRepo:  commentRepo,
		postRepo:     postRepo,
		userRepo:     userRepo,
		commentCache: commentCache,
		kafkaSvc:     kafkaSvc,
		logger:       logger,
	}
}

// CreateComment 实现评论创建。
func (s *commentService) CreateComment(ctx context.Context, authorID string, postID uint64, req *dto.CreateCommentRequest) (*vo.CommentVO, error) {
	if vErr := validation.CheckComment(req); vErr != nil {
		return nil, vErr
	}

	// 评论目标必须是已发布的帖子。
	// 草稿与不存在统一按资源未找到处理，避免通过评论接口探测草稿是否存在。
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Status != enums.Published {
		return nil, commonerrors.ErrRepoNotFound
	}

	comment := &entities.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		s.logger.Error("创建评论失败", zap.Error(err), zap.Uint64("postID", postID))
		return nil, fmt.Errorf("创建评论失败: %w", err)
	}

	s.afterCommentChanged(postID, comment.ID)

	authors, err := s.userRepo.ListUsersByIDs(ctx, []string{authorID})
	if err != nil {
		s.logger.Warn("获取评论作者资料失败", zap.Error(err), zap.String("authorID", authorID))
		authors = map[string]*entities.User{}
	}
	vos := vo.MapCommentsToCommentVOs([]*entities.Comment{comment}, authors)
	if len(vos) == 0 {
		return nil, errors.New("拼装评论视图失败")
	}
	return vos[0], nil
}

// ListComments 实现评论列表读取。
func (s *commentService) ListComments(ctx context.Context, postID uint64) (*vo.CommentListVO, error) {
	cached, err := s.commentCache.GetComments(ctx, postID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, myErrors.ErrCacheMiss) {
		// 缓存故障降级为直接回源。
		s.logger.Warn("读取评论缓存失败，回源数据库", zap.Error(err), zap.Uint64("postID", postID))
	}

	list, err := s.loadCommentList(ctx, postID)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.commentCache.SetComments(ctx, postID, list); cacheErr != nil {
		s.logger.Warn("填充评论缓存失败", zap.Error(cacheErr), zap.Uint64("postID", postID))
	}
	return list, nil
}

// DeleteComment 实现评论删除。
func (s *commentService) DeleteComment(ctx context.Context, authorID string, postID uint64, commentID uint64) error {
	if err := s.commentRepo.DeleteComment(ctx, commentID, authorID); err != nil {
		return err
	}
	s.afterCommentChanged(postID, commentID)
	return nil
}

// RefreshCommentCache 实现缓存重建：回源查询并整体覆盖缓存，操作幂等。
func (s *commentService) RefreshCommentCache(ctx context.Context, postID uint64) error {
	// 帖子已删除时让调用方（消费者）跳过重建。
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		return err
	}

	list, err := s.loadCommentList(ctx, postID)
	if err != nil {
		return err
	}
	return s.commentCache.SetComments(ctx, postID, list)
}

// afterCommentChanged 评论写入后的统一善后：立即失效缓存并异步发事件。
func (s *commentService) afterCommentChanged(postID uint64, commentID uint64) {
	go func() {
		bgCtx := context.Background()
		if err := s.commentCache.InvalidateComments(bgCtx, postID); err != nil {
			s.logger.Warn("评论变更后失效缓存失败", zap.Error(err), zap.Uint64("postID", postID))
		}
		if err := s.kafkaSvc.SendCommentChangedEvent(bgCtx, postID, commentID); err != nil {
			s.logger.Error("发送评论变更事件失败", zap.Error(err), zap.Uint64("postID", postID))
		}
	}()
}

// loadCommentList 从数据库取评论并批量补齐作者资料。
func (s *commentService) loadCommentList(ctx context.Context, postID uint64) (*vo.CommentListVO, error) {
	comments, err := s.commentRepo.ListCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("获取评论列表失败: %w", err)
	}

	authorIDSet := make(map[string]bool, len(comments))
	authorIDs := make([]string, 0, len(comments))
	for _, c := range comments {
		if !authorIDSet[c.AuthorID] {
			authorIDSet[c.AuthorID] = true
			authorIDs = append(authorIDs, c.AuthorID)
		}
	}

	authors, err := s.userRepo.ListUsersByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("批量获取评论作者资料失败: %w", err)
	}

	return &vo.CommentListVO{
		Comments: vo.MapCommentsToCommentVOs(comments, authors),
		Total:    int64(len(comments)),
	}, nil
}
