package models

import "errors"

// Address is the delivery address embedded in an order. Street and house
// are required; the rest are optional free text defaulting to empty.
type Address struct {
	Street    string `bson:"street" json:"street"`
	House     string `bson:"house" json:"house"`
	Apartment string `bson:"apartment" json:"apartment"`
	Entrance  string `bson:"entrance" json:"entrance"`
	Floor     string `bson:"floor" json:"floor"`
	Comment   string `bson:"comment" json:"comment"`
}

// Order represents a customer's order. It is written exactly once at
// submission and never mutated afterwards. The total is the caller's
// value, stored as-is.
type Order struct {
	ID            string     `bson:"id" json:"id"`
	UserID        string     `bson:"user_id" json:"user_id"`
	UserName      string     `bson:"user_name" json:"user_name"`
	UserPhone     string     `bson:"user_phone" json:"user_phone"`
	Items         []CartItem `bson:"items" json:"items"`
	Total         int        `bson:"total" json:"total"`
	PaymentMethod string     `bson:"payment_method" json:"payment_method"` // cash, click, payme, card
	Address       Address    `bson:"address" json:"address"`
	Status        string     `bson:"status" json:"status"`
	CreatedAt     string     `bson:"created_at" json:"created_at"`
}

// OrderStatusNew is the status every order is created with. No other
// status is ever set by this service.
const OrderStatusNew = "new"

// OrderRequest is the body of POST /api/orders. The order id, status and
// timestamp are never taken from here; they are generated server-side.
type OrderRequest struct {
	UserID        string     `json:"user_id"`
	UserName      string     `json:"user_name"`
	UserPhone     string     `json:"user_phone"`
	Items         []CartItem `json:"items"`
	Total         int        `json:"total"`
	PaymentMethod string     `json:"payment_method"`
	Address       Address    `json:"address"`
}

// Validate checks the submission shape before the order document is built.
func (r *OrderRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("User id is required")
	}
	if len(r.Items) == 0 {
		return errors.New("Order must contain at least one item")
	}
	if r.Address.Street == "" || r.Address.House == "" {
		return errors.New("Street and house are required")
	}
	return nil
}
