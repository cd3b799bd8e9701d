package models

// CartItem is a denormalized snapshot of a product at order time. Name and
// price are frozen copies, not live references: later catalog changes must
// not alter an already-placed order.
type CartItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Name      string `bson:"name" json:"name"`
	Price     int    `bson:"price" json:"price"`
	Quantity  int    `bson:"quantity" json:"quantity"`
	Image     string `bson:"image" json:"image"`
}

// Subtotal is the line total for this item.
func (c CartItem) Subtotal() int {
	return c.Price * c.Quantity
}
