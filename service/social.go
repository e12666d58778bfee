package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// SocialService 定义了点赞与关注的业务逻辑接口。
// - 点赞与关注均为幂等操作：重复点赞/关注不报错，取消不存在的记录同样视为成功。
type SocialService interface {
	// LikePost 为帖子点赞。帖子不存在或未发布时返回 commonerrors.ErrRepoNotFound。
	LikePost(ctx context.Context, userID string, postID uint64) (*vo.LikeStatusVO, error)

	// UnlikePost 取消点赞。
	UnlikePost(ctx context.Context, userID string, postID uint64) (*vo.LikeStatusVO, error)

	// FollowUser 关注用户。
	// - 关注自己返回 myErrors.ErrSelfFollow。
	// - 目标用户不存在时返回 commonerrors.ErrRepoNotFound。
	FollowUser(ctx context.Context, followerID, followingID string) (*vo.FollowStatusVO, error)

	// UnfollowUser 取消关注。
	UnfollowUser(ctx context.Context, followerID, followingID string) (*vo.FollowStatusVO, error)
}

// socialService 是 SocialService 接口的具体实现。
type socialService struct {
	likeRepo   mysql.LikeRepository
	followRepo mysql.FollowRepository
	postRepo   mysql.PostRepository
	userRepo   mysql.UserRepository
	logger     *core.ZapLogger
}

// NewSocialService 是 socialService 的构造函数，通过依赖注入初始化服务实例。
func NewSocialService(
	likeRepo mysql.LikeRepository,
	followRepo mysql.FollowRepository,
	postRepo mysql.PostRepository,
	userRepo mysql.UserRepository,
	logger *core.ZapLogger,
) SocialService {
	return &socialService{
		likeRepo:   likeRepo,
		followRepo: followRepo,
		postRepo:   postRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// LikePost 实现点赞。
func (s *socialService) LikePost(ctx context.Context, userID string, postID uint64) (*vo.LikeStatusVO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	// 只有已发布的帖子可以点赞；草稿与不存在统一按资源未找到处理。
	if post.Status != enums.Published {
		return nil, commonerrors.ErrRepoNotFound
	}

	if err := s.likeRepo.AddLike(ctx, postID, userID); err != nil {
		s.logger.Error("点赞失败", zap.Error(err), zap.Uint64("postID", postID), zap.String("userID", userID))
		return nil, fmt.Errorf("点赞失败: %w", err)
	}
	return s.likeStatus(ctx, userID, postID, true)
}

// UnlikePost 实现取消点赞。
func (s *socialService) UnlikePost(ctx context.Context, userID string, postID uint64) (*vo.LikeStatusVO, error) {
	if err := s.likeRepo.RemoveLike(ctx, postID, userID); err != nil {
		s.logger.Error("取消点赞失败", zap.Error(err), zap.Uint64("postID", postID), zap.String("userID", userID))
		return nil, fmt.Errorf("取消点赞失败: %w", err)
	}
	return s.likeStatus(ctx, userID, postID, false)
}

// likeStatus 汇总点赞操作后的最新状态。
func (s *socialService) likeStatus(ctx context.Context, userID string, postID uint64, liked bool) (*vo.LikeStatusVO, error) {
	counts, err := s.likeRepo.CountLikesByPostIDs(ctx, []uint64{postID})
	if err != nil {
		return nil, fmt.Errorf("统计帖子点赞数失败: %w", err)
	}
	return &vo.LikeStatusVO{
		PostID:    postID,
		Liked:     liked,
		LikeCount: counts[postID],
	}, nil
}

// FollowUser 实现关注。
func (s *socialService) FollowUser(ctx context.Context, followerID, followingID string) (*vo.FollowStatusVO, error) {
	if followerID == followingID {
		return nil, myErrors.ErrSelfFollow
	}
	if _, err := s.userRepo.GetUserByID(ctx, followingID); err != nil {
		return nil, err
	}

	if err := s.followRepo.CreateFollow(ctx, followerID, followingID); err != nil {
		s.logger.Error("关注失败", zap.Error(err),
			zap.String("followerID", followerID), zap.String("followingID", followingID))
		return nil, fmt.Errorf("关注失败: %w", err)
	}
	return s.followStatus(ctx, followingID, true)
}

// UnfollowUser 实现取关。
func (s *socialService) UnfollowUser(ctx context.Context, followerID, followingID string) (*vo.FollowStatusVO, error) {
	if err := s.followRepo.DeleteFollow(ctx, followerID, followingID); err != nil {
		s.logger.Error("取关失败", zap.Error(err),
			zap.String("followerID", followerID), zap.String("followingID", followingID))
		return nil, fmt.Errorf("取关失败: %w", err)
	}
	return s.followStatus(ctx, followingID, false)
}

// followStatus 汇总关注操作后的最新状态。
func (s *socialService) followStatus(ctx context.Context, followingID string, following bool) (*vo.FollowStatusVO, error) {
	followers, err := s.followRepo.CountFollowers(ctx, followingID)
	if err != nil {
		return nil, fmt.Errorf("统计粉丝数失败: %w", err)
	}
	return &vo.FollowStatusVO{
		UserID:    followingID,
		Following: following,
		Followers: followers,
	}, nil
}
