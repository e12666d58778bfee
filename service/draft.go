package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/vo"
)

// DraftAutosaver 为一个编辑会话维护草稿自动保存循环。
//
// 状态机: Unsaved -> Draft -> (外部 Publish) Published。
// 编辑器每次改动调用 Update 更新最新快照；定时器每个周期读取快照，
// 标题与正文都非空时落库。首次落库会得到新分配的帖子 ID，
// 此后所有保存都指向该 ID，不会重复建档；onSaved 回调通知编辑器
// 改写目标 ID，打字过程不被打断。
//
// 快照持有在互斥锁下的共享字段里，定时器每次读取的都是最新内容，
// 不存在把旧内容闭包进定时器的问题。并发写以最后一次保存为准，
// 不加行锁也不重试。
type DraftAutosaver struct {
	mu       sync.Mutex
	snapshot dto.AutosaveDraftRequest
	dirty    bool
	postID   *uint64

	authorID    string
	interval    time.Duration
	postService PostService
	onSaved     func(vo.DraftSaveVO)
	logger      *core.ZapLogger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewDraftAutosaver 创建一个自动保存器。
// - postID 非 nil 表示编辑既有帖子，首次保存不再建档。
// - intervalSeconds 小于等于 0 时使用默认 30 秒。
// - onSaved 允许为 nil。
func NewDraftAutosaver(postService PostService, logger *core.ZapLogger, authorID string, postID *uint64, intervalSeconds int, onSaved func(vo.DraftSaveVO)) *DraftAutosaver {
	if intervalSeconds <= 0 {
		intervalSeconds = 30
	}
	var owned *uint64
	if postID != nil {
		id := *postID
		owned = &id
	}
	return &DraftAutosaver{
		postID:      owned,
		authorID:    authorID,
		interval:    time.Duration(intervalSeconds) * time.Second,
		postService: postService,
		onSaved:     onSaved,
		logger:      logger,
		done:        make(chan struct{}),
	}
}

// Update 替换最新的草稿快照。
func (a *DraftAutosaver) Update(req dto.AutosaveDraftRequest) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.snapshot = req
	a.dirty = true
}

// PostID 返回当前保存目标的帖子 ID，尚未建档时返回 nil。
func (a *DraftAutosaver) PostID() *uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.postID == nil {
		return nil
	}
	id := *a.postID
	return &id
}

// Start 启动自动保存循环，直到 Stop 被调用或 ctx 取消。
func (a *DraftAutosaver) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)

	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()

	go func() {
		defer close(a.done)
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				a.tick(runCtx)
			}
		}
	}()
}

// tick 执行一次保存尝试。
func (a *DraftAutosaver) tick(ctx context.Context) {
	a.mu.Lock()
	if !a.dirty {
		a.mu.Unlock()
		return
	}
	snapshot := a.snapshot
	snapshot.Categories = append([]string(nil), a.snapshot.Categories...)
	targetID := a.postID
	a.mu.Unlock()

	// 标题或正文为空时跳过本次保存，不视为错误。
	if strings.TrimSpace(snapshot.Title) == "" || strings.TrimSpace(snapshot.Content) == "" {
		return
	}

	saveCtx, cancelSave := context.WithTimeout(ctx, 10*time.Second)
	result, err := a.postService.AutosaveDraft(saveCtx, a.authorID, targetID, &snapshot)
	cancelSave()
	if err != nil {
		a.logger.Warn("草稿自动保存失败，等待下个周期重试",
			zap.Error(err),
			zap.String("authorID", a.authorID),
		)
		return
	}

	a.mu.Lock()
	// 首次建档：采用新 ID，后续保存不再插入新记录。
	if a.postID == nil {
		id := result.PostID
		a.postID = &id
	}
	// 保存期间快照未再变更时清除脏标记。
	if autosaveSnapshotEqual(a.snapshot, snapshot) {
		a.dirty = false
	}
	a.mu.Unlock()

	if a.onSaved != nil {
		a.onSaved(*result)
	}
}

// Stop 停止自动保存循环并等待退出。进行中的保存会完成，但结果被丢弃
// （不再触发回调之外的状态更新）。
func (a *DraftAutosaver) Stop() {
	a.mu.Lock()
	cancel := a.cancel
	a.mu.Unlock()
	if cancel != nil {
		cancel()
		<-a.done
	}
}

// autosaveSnapshotEqual 比较两份草稿快照的内容是否一致。
func autosaveSnapshotEqual(a, b dto.AutosaveDraftRequest) bool {
	if a.Title != b.Title || a.Content != b.Content || a.CoverImageURL != b.CoverImageURL {
		return false
	}
	if len(a.Categories) != len(b.Categories) {
		return false
	}
	for i := range a.Categories {
		if a.Categories[i] != b.Categories[i] {
			return false
		}
	}
	return true
}
