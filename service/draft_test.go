package service

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/vo"
)

// fakePostService 只实现自动保存需要的方法，记录每次调用的目标 ID。
type fakePostService struct {
	nextID    uint64
	saveCalls []*uint64
	saved     []dto.AutosaveDraftRequest
}

func (f *fakePostService) AutosaveDraft(_ context.Context, _ string, postID *uint64, req *dto.AutosaveDraftRequest) (*vo.DraftSaveVO, error) {
	var target *uint64
	if postID != nil {
		id := *postID
		target = &id
	}
	f.saveCalls = append(f.saveCalls, target)
	f.saved = append(f.saved, *req)

	id := f.nextID
	if target == nil {
		f.nextID++
	} else {
		id = *target
	}
	return &vo.DraftSaveVO{PostID: id, LastSavedAt: time.Now()}, nil
}

func (f *fakePostService) SaveDraft(ctx context.Context, authorID string, postID *uint64, req *dto.AutosaveDraftRequest) (*vo.DraftSaveVO, error) {
	return f.AutosaveDraft(ctx, authorID, postID, req)
}

func (f *fakePostService) PublishPost(context.Context, string, *uint64, *dto.SavePostRequest) (*vo.PostVO, error) {
	panic("未使用")
}

func (f *fakePostService) GetPostForEdit(context.Context, string, uint64) (*vo.PostVO, error) {
	panic("未使用")
}

func (f *fakePostService) GetPostDetail(context.Context, uint64, string) (*vo.PostVO, error) {
	panic("未使用")
}

func (f *fakePostService) DeletePost(context.Context, string, uint64) error {
	panic("未使用")
}

func (f *fakePostService) UploadCoverImage(context.Context, string, *multipart.FileHeader) (string, error) {
	panic("未使用")
}

func TestDraftAutosaverCreatesOnceThenUpdates(t *testing.T) {
	fake := &fakePostService{nextID: 42}
	autosaver := NewDraftAutosaver(fake, nil, "author-1", nil, 30, nil)

	autosaver.Update(dto.AutosaveDraftRequest{Title: "标题", Content: "正文"})
	autosaver.tick(context.Background())

	if got := autosaver.PostID(); got == nil || *got != 42 {
		t.Fatalf("首次保存后 PostID() = %v, want 42", got)
	}

	// 再次改动后保存必须复用已分配的 ID，而不是重复建档。
	autosaver.Update(dto.AutosaveDraftRequest{Title: "标题", Content: "正文 v2"})
	autosaver.tick(context.Background())

	if len(fake.saveCalls) != 2 {
		t.Fatalf("保存次数 = %d, want 2", len(fake.saveCalls))
	}
	if fake.saveCalls[0] != nil {
		t.Errorf("首次保存目标 ID = %v, want nil（新建）", *fake.saveCalls[0])
	}
	if fake.saveCalls[1] == nil || *fake.saveCalls[1] != 42 {
		t.Errorf("第二次保存目标 ID = %v, want 42", fake.saveCalls[1])
	}
	if fake.nextID != 43 {
		t.Errorf("建档次数异常: nextID = %d, want 43", fake.nextID)
	}
}

func TestDraftAutosaverSkipsIncompleteSnapshot(t *testing.T) {
	testCases := []struct {
		name string
		req  dto.AutosaveDraftRequest
	}{
		{name: "标题为空", req: dto.AutosaveDraftRequest{Title: "", Content: "正文"}},
		{name: "正文为空", req: dto.AutosaveDraftRequest{Title: "标题", Content: ""}},
		{name: "标题只有空白", req: dto.AutosaveDraftRequest{Title: "   ", Content: "正文"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakePostService{nextID: 1}
			autosaver := NewDraftAutosaver(fake, nil, "author-1", nil, 30, nil)

			autosaver.Update(tc.req)
			autosaver.tick(context.Background())

			if len(fake.saveCalls) != 0 {
				t.Errorf("不完整快照触发了保存: %d 次", len(fake.saveCalls))
			}
			if autosaver.PostID() != nil {
				t.Errorf("不完整快照不应建档")
			}
		})
	}
}

func TestDraftAutosaverCleanSnapshotNotResaved(t *testing.T) {
	fake := &fakePostService{nextID: 7}
	autosaver := NewDraftAutosaver(fake, nil, "author-1", nil, 30, nil)

	autosaver.Update(dto.AutosaveDraftRequest{Title: "标题", Content: "正文"})
	autosaver.tick(context.Background())
	// 没有新改动时第二个周期不应重复落库。
	autosaver.tick(context.Background())

	if len(fake.saveCalls) != 1 {
		t.Errorf("保存次数 = %d, want 1", len(fake.saveCalls))
	}
}

func TestDraftAutosaverEditExistingPost(t *testing.T) {
	existing := uint64(99)
	fake := &fakePostService{nextID: 1}
	autosaver := NewDraftAutosaver(fake, nil, "author-1", &existing, 30, nil)

	autosaver.Update(dto.AutosaveDraftRequest{Title: "标题", Content: "正文"})
	autosaver.tick(context.Background())

	if len(fake.saveCalls) != 1 || fake.saveCalls[0] == nil || *fake.saveCalls[0] != 99 {
		t.Fatalf("编辑既有帖子时保存目标 = %v, want 99", fake.saveCalls)
	}
	if fake.nextID != 1 {
		t.Errorf("编辑既有帖子不应建档")
	}
}

func TestDraftAutosaverOnSavedCallback(t *testing.T) {
	fake := &fakePostService{nextID: 5}
	var gotIDs []uint64
	autosaver := NewDraftAutosaver(fake, nil, "author-1", nil, 30, func(result vo.DraftSaveVO) {
		gotIDs = append(gotIDs, result.PostID)
	})

	autosaver.Update(dto.AutosaveDraftRequest{Title: "标题", Content: "正文"})
	autosaver.tick(context.Background())

	if len(gotIDs) != 1 || gotIDs[0] != 5 {
		t.Errorf("onSaved 回调收到 %v, want [5]", gotIDs)
	}
}
