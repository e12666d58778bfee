package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/repo/redis"
)

// AllCategoriesFacet 是信息流分面中"全部分类"的哨兵值。
const AllCategoriesFacet = "All"

// BuildFacets 从帖子列表推导分类分面。
// - 首项固定为 "All"，其后按所有帖子有效分类的首次出现顺序去重排列，不排序。
func BuildFacets(posts []*entities.Post) []string {
	facets := []string{AllCategoriesFacet}
	seen := make(map[string]bool)
	for _, post := range posts {
		for _, category := range post.EffectiveCategories() {
			if !seen[category] {
				seen[category] = true
				facets = append(facets, category)
			}
		}
	}
	return facets
}

// FilterPostVOs 对已拼装的帖子视图做内存筛选，保持输入顺序。
// - searchText: 大小写不敏感的子串匹配，命中标题、正文或作者名任一即可；空串匹配所有。
// - selectedCategory: "All" 或空串表示不过滤，否则要求帖子的有效分类包含该值。
// - 两个条件相互独立，同时满足才可见。
func FilterPostVOs(posts []*vo.PostVO, searchText, selectedCategory string) []*vo.PostVO {
	needle := strings.ToLower(strings.TrimSpace(searchText))
	filterCategory := selectedCategory != "" && selectedCategory != AllCategoriesFacet

	visible := make([]*vo.PostVO, 0, len(posts))
	for _, post := range posts {
		if needle != "" && !matchesSearch(post, needle) {
			continue
		}
		if filterCategory && !containsCategory(post.Categories, selectedCategory) {
			continue
		}
		visible = append(visible, post)
	}
	return visible
}

func matchesSearch(post *vo.PostVO, needle string) bool {
	return strings.Contains(strings.ToLower(post.Title), needle) ||
		strings.Contains(strings.ToLower(post.Content), needle) ||
		strings.Contains(strings.ToLower(post.AuthorName), needle)
}

func containsCategory(categories []string, target string) bool {
	for _, c := range categories {
		if c == target {
			return true
		}
	}
	return false
}

// FeedService 定义了信息流（全部、关注、草稿、热门）的业务逻辑接口。
type FeedService interface {
	// GetFeed 返回信息流页面数据。
	// - query.Drafts 为 true 时返回 viewerID 的草稿列表（控制器保证此时已登录），
	//   否则返回全部已发布帖子。
	// - 分面从筛选前的全量帖子推导，筛选只影响可见列表。
	GetFeed(ctx context.Context, viewerID string, query *dto.FeedQueryRequest) (*vo.FeedPageVO, error)

	// GetFollowingFeed 返回 viewerID 关注的作者们的已发布帖子。
	GetFollowingFeed(ctx context.Context, viewerID string, query *dto.FeedQueryRequest) (*vo.FeedPageVO, error)

	// GetTrendingFeed 返回后台任务维护的热门帖子列表。
	GetTrendingFeed(ctx context.Context, viewerID string) ([]*vo.PostVO, error)
}

// feedService 是 FeedService 接口的具体实现。
type feedService struct {
	postRepo      mysql.PostRepository
	userRepo      mysql.UserRepository
	likeRepo      mysql.LikeRepository
	commentRepo   mysql.CommentRepository
	followRepo    mysql.FollowRepository
	trendingCache redis.TrendingCache
	logger        *core.ZapLogger
}

// NewFeedService 是 feedService 的构造函数，通过依赖注入初始化服务实例。
func NewFeedService(
	postRepo mysql.PostRepository,
	userRepo mysql.UserRepository,
	likeRepo mysql.LikeRepository,
	commentRepo mysql.CommentRepository,
	followRepo mysql.FollowRepository,
	trendingCache redis.TrendingCache,
	logger *core.ZapLogger,
) FeedService {
	return &feedService{
		postRepo:      postRepo,
		userRepo:      userRepo,
		likeRepo:      likeRepo,
		commentRepo:   commentRepo,
		followRepo:    followRepo,
		trendingCache: trendingCache,
		logger:        logger,
	}
}

// GetFeed 实现信息流读取。
func (s *feedService) GetFeed(ctx context.Context, viewerID string, query *dto.FeedQueryRequest) (*vo.FeedPageVO, error) {
	var (
		posts []*entities.Post
		err   error
	)
	if query.Drafts {
		posts, err = s.postRepo.ListDraftsByAuthor(ctx, viewerID)
	} else {
		posts, err = s.postRepo.ListPublished(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("获取信息流帖子失败: %w", err)
	}

	return s.assembleFeedPage(ctx, posts, viewerID, query)
}

// GetFollowingFeed 实现关注信息流读取。
func (s *feedService) GetFollowingFeed(ctx context.Context, viewerID string, query *dto.FeedQueryRequest) (*vo.FeedPageVO, error) {
	followingIDs, err := s.followRepo.ListFollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("获取关注列表失败: %w", err)
	}

	posts, err := s.postRepo.ListPublishedByAuthors(ctx, followingIDs)
	if err != nil {
		return nil, fmt.Errorf("获取关注信息流帖子失败: %w", err)
	}

	return s.assembleFeedPage(ctx, posts, viewerID, query)
}

// GetTrendingFeed 实现热门帖子读取。
// 缓存中的帖子已含快照浏览量，这里只补齐作者资料与互动计数。
func (s *feedService) GetTrendingFeed(ctx context.Context, viewerID string) ([]*vo.PostVO, error) {
	posts, err := s.trendingCache.GetTrendingPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取热门帖子失败: %w", err)
	}

	vos, _, err := s.mapWithProfilesAndStats(ctx, posts, viewerID)
	if err != nil {
		return nil, err
	}
	return vos, nil
}

// assembleFeedPage 批量取齐作者与计数，构建分面并应用筛选。
func (s *feedService) assembleFeedPage(ctx context.Context, posts []*entities.Post, viewerID string, query *dto.FeedQueryRequest) (*vo.FeedPageVO, error) {
	vos, facets, err := s.mapWithProfilesAndStats(ctx, posts, viewerID)
	if err != nil {
		return nil, err
	}

	return &vo.FeedPageVO{
		Posts:  FilterPostVOs(vos, query.SearchText, query.Category),
		Facets: facets,
	}, nil
}

// mapWithProfilesAndStats 把帖子实体批量转换为视图。
// 作者资料按去重后的作者 ID 一次取齐，点赞/评论计数各走一条 GROUP BY 查询。
func (s *feedService) mapWithProfilesAndStats(ctx context.Context, posts []*entities.Post, viewerID string) ([]*vo.PostVO, []string, error) {
	facets := BuildFacets(posts)
	if len(posts) == 0 {
		return []*vo.PostVO{}, facets, nil
	}

	authorIDSet := make(map[string]bool, len(posts))
	authorIDs := make([]string, 0, len(posts))
	postIDs := make([]uint64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
		if !authorIDSet[post.AuthorID] {
			authorIDSet[post.AuthorID] = true
			authorIDs = append(authorIDs, post.AuthorID)
		}
	}

	authors, err := s.userRepo.ListUsersByIDs(ctx, authorIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("批量获取作者资料失败: %w", err)
	}
	likeCounts, err := s.likeRepo.CountLikesByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("批量统计点赞数失败: %w", err)
	}
	commentCounts, err := s.commentRepo.CountCommentsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("批量统计评论数失败: %w", err)
	}

	stats := make(map[uint64]vo.AuthorStat, len(postIDs))
	for _, id := range postIDs {
		stats[id] = vo.AuthorStat{LikeCount: likeCounts[id], CommentCount: commentCounts[id]}
	}

	vos := vo.MapPostsToPostVOs(posts, authors, stats)

	// 登录用户补齐点赞状态，失败只降级不报错。
	if viewerID != "" {
		liked, likeErr := s.likeRepo.ListLikedPostIDs(ctx, viewerID, postIDs)
		if likeErr != nil {
			s.logger.Warn("查询用户点赞集合失败，点赞状态按未点赞展示", zap.Error(likeErr), zap.String("viewerID", viewerID))
		} else {
			for _, item := range vos {
				item.LikedByViewer = liked[item.ID]
			}
		}
	}

	return vos, facets, nil
}
