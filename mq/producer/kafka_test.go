package producer

import (
	"context"
	"testing"

	"github.com/Xushengqwer/blog_service/models/events"
)

// 未配置 Kafka brokers 时 main 注入 nil 生产者，
// 所有发送入口必须把 nil 接收者当作空操作，不允许 panic。
func TestNilProducerSendsAreNoOps(t *testing.T) {
	var p *KafkaProducer
	ctx := context.Background()

	if err := p.SendPostPublishedEvent(ctx, events.PostEventData{ID: 1}); err != nil {
		t.Errorf("SendPostPublishedEvent 在 nil 生产者上应为空操作, 实际返回: %v", err)
	}
	if err := p.SendPostDeleteEvent(ctx, 1); err != nil {
		t.Errorf("SendPostDeleteEvent 在 nil 生产者上应为空操作, 实际返回: %v", err)
	}
	if err := p.SendCommentChangedEvent(ctx, 1, 2); err != nil {
		t.Errorf("SendCommentChangedEvent 在 nil 生产者上应为空操作, 实际返回: %v", err)
	}
	if err := p.SendEvent(ctx, "some-topic", struct{}{}); err != nil {
		t.Errorf("SendEvent 在 nil 生产者上应为空操作, 实际返回: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close 在 nil 生产者上应为空操作, 实际返回: %v", err)
	}
}
