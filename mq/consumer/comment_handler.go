package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/events"
	"github.com/Xushengqwer/blog_service/service"
)

// MessageHandler 定义了处理 Kafka 消息的接口
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// CommentChangedHandler 消费评论变更事件，重建对应帖子的评论列表缓存。
// 写路径只负责失效缓存并发事件，重建工作全部集中在这里，
// 保证缓存内容始终由同一条路径生成。
type CommentChangedHandler struct {
	logger         *core.ZapLogger
	commentService service.CommentService
}

func NewCommentChangedHandler(logger *core.ZapLogger, commentService service.CommentService) *CommentChangedHandler {
	return &CommentChangedHandler{
		logger:         logger,
		commentService: commentService,
	}
}

func (h *CommentChangedHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.CommentChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("CommentChangedHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	h.logger.Debug("CommentChangedHandler: 收到评论变更事件",
		zap.String("event_id", event.EventID),
		zap.Uint64("post_id", event.PostID),
		zap.Uint64("comment_id", event.CommentID))

	refreshCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.commentService.RefreshCommentCache(refreshCtx, event.PostID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			// 帖子已被删除，缓存不需要重建。
			h.logger.Warn("CommentChangedHandler: 帖子已不存在，跳过缓存重建", zap.Uint64("post_id", event.PostID))
			return nil
		}
		h.logger.Error("CommentChangedHandler: 重建评论列表缓存失败",
			zap.Error(err),
			zap.Uint64("post_id", event.PostID))
		return fmt.Errorf("CommentChangedHandler: 重建评论缓存失败: %w", err)
	}

	return nil
}
