package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
)

// stubPostRepo 让 GetPostByID 返回固定结果，其余方法沿用 panicPostRepo 的保护。
type stubPostRepo struct {
	panicPostRepo
	post *entities.Post
	err  error
}

func (s stubPostRepo) GetPostByID(_ context.Context, _ uint64) (*entities.Post, error) {
	return s.post, s.err
}

// panicLikeRepo 在任何方法被调用时 panic，用于断言被拒绝的点赞不碰点赞表。
type panicLikeRepo struct{}

func (panicLikeRepo) AddLike(_ context.Context, _ uint64, _ string) error {
	panic("不应写入点赞")
}
func (panicLikeRepo) RemoveLike(_ context.Context, _ uint64, _ string) error {
	panic("不应写入点赞")
}
func (panicLikeRepo) HasLiked(_ context.Context, _ uint64, _ string) (bool, error) {
	panic("不应读取点赞")
}
func (panicLikeRepo) CountLikesByPostIDs(_ context.Context, _ []uint64) (map[uint64]int64, error) {
	panic("不应读取点赞")
}
func (panicLikeRepo) ListLikedPostIDs(_ context.Context, _ string, _ []uint64) (map[uint64]bool, error) {
	panic("不应读取点赞")
}
func (panicLikeRepo) DeleteLikesByPostID(_ context.Context, _ *gorm.DB, _ uint64) error {
	panic("不应写入点赞")
}

// panicCommentRepo 在任何方法被调用时 panic，用于断言被拒绝的评论不落库。
type panicCommentRepo struct{}

func (panicCommentRepo) CreateComment(_ context.Context, _ *entities.Comment) error {
	panic("不应写入评论")
}
func (panicCommentRepo) ListCommentsByPostID(_ context.Context, _ uint64) ([]*entities.Comment, error) {
	panic("不应读取评论")
}
func (panicCommentRepo) CountCommentsByPostIDs(_ context.Context, _ []uint64) (map[uint64]int64, error) {
	panic("不应读取评论")
}
func (panicCommentRepo) DeleteComment(_ context.Context, _ uint64, _ string) error {
	panic("不应写入评论")
}
func (panicCommentRepo) DeleteCommentsByPostID(_ context.Context, _ *gorm.DB, _ uint64) error {
	panic("不应写入评论")
}

// 草稿与不存在的帖子对点赞接口必须不可区分，否则任何登录用户都能枚举草稿 ID。
func TestLikePostDraftIndistinguishableFromMissing(t *testing.T) {
	tests := []struct {
		name string
		repo stubPostRepo
	}{
		{"帖子不存在", stubPostRepo{err: commonerrors.ErrRepoNotFound}},
		{"帖子是草稿", stubPostRepo{post: &entities.Post{Status: enums.Draft, AuthorID: "author-1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &socialService{likeRepo: panicLikeRepo{}, postRepo: tt.repo}
			status, err := svc.LikePost(context.Background(), "viewer-1", 7)
			if status != nil {
				t.Fatalf("不应返回点赞状态: %+v", status)
			}
			if !errors.Is(err, commonerrors.ErrRepoNotFound) {
				t.Fatalf("期望 ErrRepoNotFound, 实际得到: %v", err)
			}
		})
	}
}

// 对草稿发表评论同样折叠为资源未找到，且不触碰评论表。
func TestCreateCommentDraftIndistinguishableFromMissing(t *testing.T) {
	tests := []struct {
		name string
		repo stubPostRepo
	}{
		{"帖子不存在", stubPostRepo{err: commonerrors.ErrRepoNotFound}},
		{"帖子是草稿", stubPostRepo{post: &entities.Post{Status: enums.Draft, AuthorID: "author-1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &commentService{commentRepo: panicCommentRepo{}, postRepo: tt.repo}
			req := &dto.CreateCommentRequest{Content: "写得不错"}
			result, err := svc.CreateComment(context.Background(), "viewer-1", 7, req)
			if result != nil {
				t.Fatalf("不应返回评论: %+v", result)
			}
			if !errors.Is(err, commonerrors.ErrRepoNotFound) {
				t.Fatalf("期望 ErrRepoNotFound, 实际得到: %v", err)
			}
		})
	}
}
