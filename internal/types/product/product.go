package product

// Product - позиция корзины: товар и его количество
type Product struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Descriptor - форма добавления товара в корзину (без количества)
type Descriptor struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
}

// ToProduct превращает описание товара в позицию корзины с количеством 1
func (d Descriptor) ToProduct() Product {
	return Product{
		ID:       d.ID,
		Title:    d.Title,
		ImageURL: d.ImageURL,
		Price:    d.Price,
		Quantity: 1,
	}
}
