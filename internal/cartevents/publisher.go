package cartevents

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gomarketplace/internal/cart"
	"gomarketplace/internal/kafka"
)

// DefaultSendTimeout ограничивает одну отправку события
const DefaultSendTimeout = 10 * time.Second

// Publisher превращает изменения корзины в события Kafka
type Publisher struct {
	Producer    kafka.EventProducer
	Logger      *zap.SugaredLogger
	DeviceID    string
	SendTimeout time.Duration
}

func NewPublisher(producer kafka.EventProducer, logger *zap.SugaredLogger, deviceID string) *Publisher {
	return &Publisher{
		Producer: producer,
		Logger:   logger,
		DeviceID: deviceID,

		SendTimeout: DefaultSendTimeout,
	}
}

// Run отправляет по событию на каждое изменение и возвращается, когда канал закрыт.
// Канал должен быть подпиской без потерь (Store.SubscribeAll): при остановке
// корзины он закрывается после того, как все накопленные изменения прочитаны.
// Загрузка корзины из хранилища событием не является.
func (p *Publisher) Run(changes <-chan cart.Change) {
	for change := range changes {
		event, ok := p.toEvent(change)
		if !ok {
			continue
		}

		p.send(event)
	}
}

func (p *Publisher) send(event kafka.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), p.SendTimeout)
	defer cancel()

	if err := p.Producer.SendEvent(ctx, event); err != nil {
		p.Logger.Warnw("failed to send cart event",
			"event_id", event.ID,
			"type", event.Type,
			"product_id", event.ProductID,
			"err", err,
		)
	}
}

func (p *Publisher) toEvent(change cart.Change) (kafka.Event, bool) {
	var eventType kafka.EventType
	switch change.Op {
	case cart.OpAdd:
		eventType = kafka.EventTypeAddToCart
	case cart.OpIncrement:
		eventType = kafka.EventTypeIncrement
	case cart.OpDecrement:
		eventType = kafka.EventTypeDecrement
	default:
		return kafka.Event{}, false
	}

	var price float64
	for _, item := range change.Products {
		if item.ID == change.ProductID {
			price = item.Price
			break
		}
	}

	return kafka.NewEvent(p.DeviceID, eventType, change.ProductID, change.Quantity(), price), true
}
