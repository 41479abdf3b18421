package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	// DefaultBatchTimeout - сколько writer ждет добора пачки перед отправкой
	DefaultBatchTimeout = 10 * time.Millisecond

	// EventTypeHeader - заголовок сообщения с типом события
	EventTypeHeader = "event_type"
)

type Producer struct {
	Writer WriterInterface // Используем интерфейс
	Logger *zap.SugaredLogger
}

// NewProducer создает продюсер событий корзины
func NewProducer(brokers []string, topic string, logger *zap.SugaredLogger) *Producer {
	return &Producer{
		Writer: &kafkaWriterWrapper{ // Обёртка над реальным Writer
			Writer: &kafka.Writer{
				Addr:         kafka.TCP(brokers...),
				Topic:        topic,
				Balancer:     &kafka.Hash{},
				BatchTimeout: DefaultBatchTimeout,
				RequiredAcks: kafka.RequireOne,
			},
		},
		Logger: logger,
	}
}

// Обёртка для реализации интерфейса
type kafkaWriterWrapper struct {
	Writer *kafka.Writer
}

func (w *kafkaWriterWrapper) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	return w.Writer.WriteMessages(ctx, msgs...)
}

func (w *kafkaWriterWrapper) Close() error {
	return w.Writer.Close()
}

func (p *Producer) SendEvent(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// ключ по устройству: события одной корзины попадают в одну партицию
	err = p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.DeviceID),
		Value: value,
		Headers: []kafka.Header{
			{Key: EventTypeHeader, Value: []byte(event.Type)},
		},
	})

	if err != nil {
		p.Logger.Errorw("Failed to write Kafka message",
			"event_id", event.ID,
			"type", event.Type,
			"err", err,
		)
		return err
	}

	return nil
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}
