package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/validation"
)

// panicPostRepo 在任何方法被调用时 panic，用于断言校验失败的路径完全不触碰仓库层。
type panicPostRepo struct{}

func (panicPostRepo) CreatePost(_ context.Context, _ *gorm.DB, _ *entities.Post) error {
	panic("不应写入仓库")
}
func (panicPostRepo) UpdatePost(_ context.Context, _ *gorm.DB, _ *entities.Post) error {
	panic("不应写入仓库")
}
func (panicPostRepo) GetPostByID(_ context.Context, _ uint64) (*entities.Post, error) {
	panic("不应读取仓库")
}
func (panicPostRepo) GetPostsByIDs(_ context.Context, _ []uint64) ([]*entities.Post, error) {
	panic("不应读取仓库")
}
func (panicPostRepo) ListPublished(_ context.Context) ([]*entities.Post, error) {
	panic("不应读取仓库")
}
func (panicPostRepo) ListPublishedByAuthors(_ context.Context, _ []string) ([]*entities.Post, error) {
	panic("不应读取仓库")
}
func (panicPostRepo) ListDraftsByAuthor(_ context.Context, _ string) ([]*entities.Post, error) {
	panic("不应读取仓库")
}
func (panicPostRepo) ListByAuthor(_ context.Context, _ string) ([]*entities.Post, error) {
	panic("不应读取仓库")
}
func (panicPostRepo) DeletePost(_ context.Context, _ *gorm.DB, _ uint64) error {
	panic("不应写入仓库")
}

func TestPublishPostInvalidInputWritesNothing(t *testing.T) {
	svc := &postService{postRepo: panicPostRepo{}}

	tests := []struct {
		name      string
		req       *dto.SavePostRequest
		wantField string
	}{
		{
			name:      "标题为空",
			req:       &dto.SavePostRequest{Title: "  ", Content: "正文", Categories: []string{"Go"}},
			wantField: "title",
		},
		{
			name:      "正文为空",
			req:       &dto.SavePostRequest{Title: "标题", Content: "", Categories: []string{"Go"}},
			wantField: "content",
		},
		{
			name:      "没有分类",
			req:       &dto.SavePostRequest{Title: "标题", Content: "正文", Categories: nil},
			wantField: "categories",
		},
		{
			name:      "分类超过上限",
			req:       &dto.SavePostRequest{Title: "标题", Content: "正文", Categories: []string{"a", "b", "c", "d", "e", "f"}},
			wantField: "categories",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// panicPostRepo 保证任何仓库调用都会让测试失败。
			result, err := svc.PublishPost(context.Background(), "author-1", nil, tt.req)
			if result != nil {
				t.Fatalf("校验失败时不应返回帖子: %+v", result)
			}
			var vErr *validation.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("期望 ValidationError, 实际得到: %v", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("期望首个失败字段 %q, 实际 %q (message=%q)", tt.wantField, vErr.Field, vErr.Message)
			}
			if vErr.Message == "" {
				t.Error("校验错误必须携带提示信息")
			}
		})
	}
}

func TestSaveDraftRelaxedCheck(t *testing.T) {
	// 只走校验失败路径，同样不允许触碰仓库。
	svc := &postService{postRepo: panicPostRepo{}}

	tests := []struct {
		name string
		req  *dto.AutosaveDraftRequest
	}{
		{"标题为空", &dto.AutosaveDraftRequest{Title: "", Content: "正文", Categories: []string{"Go"}}},
		{"正文为空", &dto.AutosaveDraftRequest{Title: "标题", Content: "   ", Categories: []string{"Go"}}},
		{"分类全为空白", &dto.AutosaveDraftRequest{Title: "标题", Content: "正文", Categories: []string{" ", ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveDraft(context.Background(), "author-1", nil, tt.req)
			var vErr *validation.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("期望 ValidationError, 实际得到: %v", err)
			}
		})
	}
}
