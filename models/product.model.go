package models

// Product is a catalog entry. Prices are integer so'm with no decimals.
// Discount is a percentage; nil means the product is not discounted.
type Product struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Price       int    `bson:"price" json:"price"`
	Image       string `bson:"image" json:"image"`
	Category    string `bson:"category" json:"category"`
	IsPopular   bool   `bson:"is_popular" json:"is_popular"`
	Discount    *int   `bson:"discount" json:"discount"`
}
