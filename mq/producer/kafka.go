package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/models/events"
)

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题。
// - nil 接收者安全：未配置 Kafka brokers 时生产者为 nil，发送是空操作。
//   评论缓存在发事件前已经失效，读取路径会自行回源，所以丢弃事件不影响正确性。
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	if p == nil {
		return nil
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	}
	return err
}

// SendPostPublishedEvent 发送帖子发布事件到 Kafka。
// - 意图: 通知下游（搜索索引、推送等）有新帖子发布。
func (p *KafkaProducer) SendPostPublishedEvent(ctx context.Context, postData events.PostEventData) error {
	if p == nil {
		return nil
	}
	event := events.PostPublishedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Post:      postData,
	}
	return p.SendEvent(ctx, p.topics.PostPublished, event)
}

// SendPostDeleteEvent 发送帖子删除事件到 Kafka。
func (p *KafkaProducer) SendPostDeleteEvent(ctx context.Context, postID uint64) error {
	if p == nil {
		return nil
	}
	event := events.PostDeletedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		PostID:    postID,
	}
	return p.SendEvent(ctx, p.topics.PostDeleted, event)
}

// SendCommentChangedEvent 发送评论变更事件到 Kafka。
// - 意图: 评论增删后通知消费者重建该帖子的评论列表缓存。
func (p *KafkaProducer) SendCommentChangedEvent(ctx context.Context, postID uint64, commentID uint64) error {
	if p == nil {
		return nil
	}
	event := events.CommentChangedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		PostID:    postID,
		CommentID: commentID,
	}
	return p.SendEvent(ctx, p.topics.CommentChanged, event)
}

// Close 关闭底层的 Kafka Writer。nil 接收者时为空操作。
func (p *KafkaProducer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
