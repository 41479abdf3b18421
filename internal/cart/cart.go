package cart

import (
	"context"

	"gomarketplace/internal/types/product"
)

// Op - вид изменения корзины
type Op string

const (
	OpLoad      Op = "load"
	OpAdd       Op = "addToCart"
	OpIncrement Op = "increment"
	OpDecrement Op = "decrement"
)

// Change публикуется подписчикам после каждого примененного изменения.
// Products - полный снимок корзины после изменения.
type Change struct {
	Op        Op
	ProductID string
	Products  []product.Product
	Version   uint64
}

// Quantity возвращает количество товара ProductID в снимке, 0 если его нет
func (c Change) Quantity() int {
	for _, p := range c.Products {
		if p.ID == c.ProductID {
			return p.Quantity
		}
	}
	return 0
}

// CartStore - корзина покупок
//
//go:generate mockgen -source=cart.go -destination=../mocks/mock_cart_store.go -package=mocks
type CartStore interface {
	// Products возвращает копию текущей корзины
	Products() []product.Product
	// AddToCart добавляет товар с количеством 1, либо увеличивает количество уже лежащего
	AddToCart(item product.Descriptor) []product.Product
	// Increment увеличивает количество товара на 1
	Increment(id string) []product.Product
	// Decrement уменьшает количество товара на 1, но не ниже 1
	Decrement(id string) []product.Product
	// Subscribe подписывает на изменения корзины, вторая функция отписывает
	Subscribe() (<-chan Change, func())
	// Ready закрывается после первичной загрузки корзины из хранилища
	Ready() <-chan struct{}
	// Flush дожидается записи всех уже примененных изменений
	Flush(ctx context.Context) error
}
