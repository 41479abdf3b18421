package kafka

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeAddToCart EventType = "addToCart"
	EventTypeIncrement EventType = "increment"
	EventTypeDecrement EventType = "decrement"
)

// IsCartEvent - тип относится к изменениям корзины
func (t EventType) IsCartEvent() bool {
	switch t {
	case EventTypeAddToCart, EventTypeIncrement, EventTypeDecrement:
		return true
	}
	return false
}

// Event - событие изменения корзины устройства
type Event struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"device_id"`
	Type      EventType `json:"type"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent заполняет ID и время события
func NewEvent(deviceID string, eventType EventType, productID string, quantity int, price float64) Event {
	return Event{
		ID:        uuid.New().String(),
		DeviceID:  deviceID,
		Type:      eventType,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
		Timestamp: time.Now().UTC(),
	}
}
