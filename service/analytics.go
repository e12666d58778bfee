package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/Xushengqwer/go-common/core"

	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// AnalyticsService 定义了作者数据面板的业务逻辑接口。
type AnalyticsService interface {
	// GetAuthorAnalytics 汇总作者名下全部帖子（含草稿）的浏览、点赞、评论数据，
	// 以及按发布日聚合的互动曲线。
	GetAuthorAnalytics(ctx context.Context, authorID string) (*vo.AnalyticsVO, error)
}

// analyticsService 是 AnalyticsService 接口的具体实现。
type analyticsService struct {
	postRepo    mysql.PostRepository
	likeRepo    mysql.LikeRepository
	commentRepo mysql.CommentRepository
	logger      *core.ZapLogger
}

// NewAnalyticsService 是 analyticsService 的构造函数，通过依赖注入初始化服务实例。
func NewAnalyticsService(
	postRepo mysql.PostRepository,
	likeRepo mysql.LikeRepository,
	commentRepo mysql.CommentRepository,
	logger *core.ZapLogger,
) AnalyticsService {
	return &analyticsService{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// GetAuthorAnalytics 实现数据面板聚合。
func (s *analyticsService) GetAuthorAnalytics(ctx context.Context, authorID string) (*vo.AnalyticsVO, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("获取作者帖子列表失败: %w", err)
	}

	result := &vo.AnalyticsVO{
		TotalPosts: int64(len(posts)),
		Posts:      make([]*vo.PostStatsVO, 0, len(posts)),
		Engagement: []*vo.EngagementPointVO{},
	}
	if len(posts) == 0 {
		return result, nil
	}

	postIDs := make([]uint64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	likeCounts, err := s.likeRepo.CountLikesByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("批量统计点赞数失败: %w", err)
	}
	commentCounts, err := s.commentRepo.CountCommentsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("批量统计评论数失败: %w", err)
	}

	// 按发布日（YYYY-MM-DD）聚合浏览与互动。
	daily := make(map[string]*vo.EngagementPointVO)
	for _, post := range posts {
		likes := likeCounts[post.ID]
		comments := commentCounts[post.ID]

		result.TotalViews += post.ViewCount
		result.TotalLikes += likes
		result.TotalComments += comments
		result.Posts = append(result.Posts, &vo.PostStatsVO{
			PostID:   post.ID,
			Title:    post.Title,
			Views:    post.ViewCount,
			Likes:    likes,
			Comments: comments,
		})

		day := post.CreatedAt.Format("2006-01-02")
		point, ok := daily[day]
		if !ok {
			point = &vo.EngagementPointVO{Date: day}
			daily[day] = point
		}
		point.Views += post.ViewCount
		point.Engagement += likes + comments
	}

	for _, point := range daily {
		result.Engagement = append(result.Engagement, point)
	}
	sort.Slice(result.Engagement, func(i, j int) bool {
		return result.Engagement[i].Date < result.Engagement[j].Date
	})

	return result, nil
}
