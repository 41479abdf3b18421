package kafka

import (
	"context"
	"encoding/json"
	"errors"

	kgo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Consumer реализует EventConsumer: читает события корзины из топика.
type Consumer struct {
	Reader ReaderInterface
	Logger *zap.SugaredLogger
}

func NewConsumer(brokers []string, topic, groupID string, logger *zap.SugaredLogger) EventConsumer {
	return &Consumer{
		Reader: &kafkaReaderWrapper{
			Reader: kgo.NewReader(kgo.ReaderConfig{
				Brokers:  brokers,
				Topic:    topic,
				GroupID:  groupID,
				MinBytes: 10e3, // 10KB
				MaxBytes: 10e6, // 10MB
			}),
		},
		Logger: logger,
	}
}

type kafkaReaderWrapper struct {
	Reader *kgo.Reader
}

func (w *kafkaReaderWrapper) ReadMessage(ctx context.Context) (kgo.Message, error) {
	return w.Reader.ReadMessage(ctx)
}

func (w *kafkaReaderWrapper) Close() error {
	return w.Reader.Close()
}

// Consume читает сообщения, пока ctx не отменен. Битые сообщения и ошибки
// обработчика логируются и пропускаются.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, Event) error) {
	for {
		msg, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			c.Logger.Errorw("Failed to read message", "err", err)
			continue
		}

		// в топике бывают чужие события: отбрасываем их по заголовку, не разбирая тело
		if eventType, ok := headerValue(msg, EventTypeHeader); ok && !EventType(eventType).IsCartEvent() {
			c.Logger.Debugw("Skipping foreign event", "type", eventType, "offset", msg.Offset)
			continue
		}

		var event Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.Logger.Errorw("Failed to unmarshal event", "offset", msg.Offset, "err", err)
			continue
		}

		if err := handler(ctx, event); err != nil {
			c.Logger.Errorw("Failed to process event", "event_id", event.ID, "type", event.Type, "err", err)
		}
	}
}

func headerValue(msg kgo.Message, key string) (string, bool) {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value), true
		}
	}
	return "", false
}

func (c *Consumer) Close() error {
	return c.Reader.Close()
}
