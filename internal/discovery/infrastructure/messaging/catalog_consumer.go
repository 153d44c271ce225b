package messaging

import (
	"context"
	"errors"
	"time"

	catalogdomain "github.com/wyfcoding/beautyassistant/internal/catalog/domain"
	"github.com/wyfcoding/beautyassistant/internal/discovery/infrastructure/catalogsource"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
	"github.com/wyfcoding/beautyassistant/pkg/mq"
)

// CatalogConsumer 订阅目录导入事件，触发搜索快照重建
type CatalogConsumer struct {
	consumer *mq.KafkaConsumer
	dlq      *mq.DeadLetterQueue
	source   *catalogsource.Source
}

// NewCatalogConsumer 创建目录事件消费者
func NewCatalogConsumer(consumer *mq.KafkaConsumer, dlq *mq.DeadLetterQueue, source *catalogsource.Source) *CatalogConsumer {
	return &CatalogConsumer{consumer: consumer, dlq: dlq, source: source}
}

// Run 循环消费，直到上下文取消
func (c *CatalogConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.consumer.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return ctx.Err()
			}
			logger.Error(ctx, "Failed to read catalog event", "error", err)
			time.Sleep(time.Second)
			continue
		}

		if err := c.handle(ctx, msg); err != nil {
			logger.Error(ctx, "Failed to handle catalog event",
				"topic", msg.Topic, "offset", msg.Offset, "error", err)
			if dlqErr := c.dlq.Send(ctx, msg, "snapshot reload failed", err); dlqErr != nil {
				logger.Error(ctx, "Failed to send to dead letter queue", "error", dlqErr)
			}
		}
	}
}

func (c *CatalogConsumer) handle(ctx context.Context, msg *mq.Message) error {
	var event catalogdomain.CatalogImportedEvent
	if err := msg.UnmarshalPayload(&event); err != nil {
		return err
	}

	logger.Info(ctx, "Catalog import event received",
		"source", event.Source, "count", event.Count)
	return c.source.Reload(ctx)
}
