package main

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// SeedRepos 聚合种子填充所需的仓库。
type SeedRepos struct {
	DB          *gorm.DB
	UserRepo    mysql.UserRepository
	PostRepo    mysql.PostRepository
	CommentRepo mysql.CommentRepository
	LikeRepo    mysql.LikeRepository
	FollowRepo  mysql.FollowRepository
}

// seedCategories 是分类池，帖子从中随机取 1~3 个。
var seedCategories = []string{
	"Technology", "Design", "Travel", "Food", "Lifestyle",
	"Programming", "Photography", "Music",
}

// seedPassword 是所有种子用户的统一登录密码，方便本地调试。
const seedPassword = "password123"

// Seed 生成测试用户、帖子、评论、点赞和关注关系。
// - 大约 1/4 的帖子以草稿状态落库，其余为已发布。
// - 评论和点赞只落在已发布的帖子上，与线上行为一致。
func Seed(ctx context.Context, repos *SeedRepos, logger *core.ZapLogger, numUsers, postsPerUser int) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("生成种子密码哈希失败", zap.Error(err))
	}

	// --- 1. 创建用户 ---
	userIDs := make([]string, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user := &entities.User{
			ID:           uuid.New().String(),
			Name:         gofakeit.Name(),
			Email:        fmt.Sprintf("%d_%s", i, gofakeit.Email()),
			PasswordHash: string(passwordHash),
			Bio:          gofakeit.Sentence(gofakeit.Number(5, 15)),
			AvatarURL:    gofakeit.ImageURL(100, 100),
		}
		if err := repos.UserRepo.CreateUser(ctx, user); err != nil {
			logger.Error("创建种子用户失败", zap.Error(err), zap.String("email", user.Email))
			continue
		}
		userIDs = append(userIDs, user.ID)
	}
	logger.Info("种子用户创建完毕", zap.Int("数量", len(userIDs)))
	if len(userIDs) == 0 {
		logger.Fatal("没有任何用户创建成功，终止填充")
	}

	// --- 2. 创建帖子 ---
	publishedIDs := make([]uint64, 0, len(userIDs)*postsPerUser)
	for _, authorID := range userIDs {
		for j := 0; j < postsPerUser; j++ {
			categories := pickCategories(gofakeit.Number(1, 3))
			post := &entities.Post{
				Title:         gofakeit.Sentence(gofakeit.Number(4, 10)),
				Content:       gofakeit.Paragraph(3, 5, 20, "\n\n"),
				Category:      categories[0],
				Categories:    categories,
				AuthorID:      authorID,
				CoverImageURL: gofakeit.ImageURL(800, 400),
				Status:        enums.Published,
				ViewCount:     int64(gofakeit.Number(0, 5000)),
			}
			if j%4 == 3 {
				post.Status = enums.Draft
				post.ViewCount = 0
			}
			if err := repos.PostRepo.CreatePost(ctx, repos.DB, post); err != nil {
				logger.Error("创建种子帖子失败", zap.Error(err), zap.String("author_id", authorID))
				continue
			}
			if post.Status == enums.Published {
				publishedIDs = append(publishedIDs, post.ID)
			}
		}
	}
	logger.Info("种子帖子创建完毕", zap.Int("已发布", len(publishedIDs)))

	// --- 3. 评论与点赞 ---
	for _, postID := range publishedIDs {
		for k := 0; k < gofakeit.Number(0, 5); k++ {
			comment := &entities.Comment{
				PostID:   postID,
				AuthorID: userIDs[gofakeit.Number(0, len(userIDs)-1)],
				Content:  gofakeit.Sentence(gofakeit.Number(5, 25)),
			}
			if err := repos.CommentRepo.CreateComment(ctx, comment); err != nil {
				logger.Error("创建种子评论失败", zap.Error(err), zap.Uint64("post_id", postID))
			}
		}
		for k := 0; k < gofakeit.Number(0, len(userIDs)); k++ {
			userID := userIDs[gofakeit.Number(0, len(userIDs)-1)]
			if err := repos.LikeRepo.AddLike(ctx, postID, userID); err != nil {
				logger.Error("创建种子点赞失败", zap.Error(err), zap.Uint64("post_id", postID))
			}
		}
	}

	// --- 4. 关注关系 ---
	followCount := 0
	for _, followerID := range userIDs {
		for k := 0; k < gofakeit.Number(0, 4); k++ {
			followingID := userIDs[gofakeit.Number(0, len(userIDs)-1)]
			if followingID == followerID {
				continue
			}
			if err := repos.FollowRepo.CreateFollow(ctx, followerID, followingID); err != nil {
				logger.Error("创建种子关注失败", zap.Error(err), zap.String("follower_id", followerID))
				continue
			}
			followCount++
		}
	}
	logger.Info("测试数据填充完毕",
		zap.Int("用户", len(userIDs)),
		zap.Int("已发布帖子", len(publishedIDs)),
		zap.Int("关注关系", followCount),
		zap.String("统一密码", seedPassword))
}

// pickCategories 从分类池中随机取 n 个不重复的分类。
func pickCategories(n int) []string {
	if n > len(seedCategories) {
		n = len(seedCategories)
	}
	picked := make([]string, 0, n)
	used := make(map[int]bool, n)
	for len(picked) < n {
		idx := gofakeit.Number(0, len(seedCategories)-1)
		if used[idx] {
			continue
		}
		used[idx] = true
		picked = append(picked, seedCategories[idx])
	}
	return picked
}
