// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nurmuhammad-fullstack/HotDog/models"
	"github.com/nurmuhammad-fullstack/HotDog/store"
	"github.com/nurmuhammad-fullstack/HotDog/utils"
)

// Notifier dispatches a best-effort operational message. Implementations
// report success as a bool and must never block past their own timeout.
type Notifier interface {
	Send(ctx context.Context, text string) bool
}

// OrderController handles order submission and listing.
type OrderController struct {
	Orders   store.Collection
	Notifier Notifier
}

// NewOrderController creates a new OrderController.
func NewOrderController(orders store.Collection, notifier Notifier) *OrderController {
	return &OrderController{Orders: orders, Notifier: notifier}
}

// CreateOrder accepts an order submission, persists it and notifies the
// shop. The order id, status and timestamp are fixed server-side; the
// caller's total is stored as submitted. Only a storage failure fails the
// request: the notification outcome never affects the response.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order := models.Order{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		UserName:      req.UserName,
		UserPhone:     req.UserPhone,
		Items:         req.Items,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		Address:       req.Address,
		Status:        models.OrderStatusNew,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	_, err = oc.Orders.InsertOne(ctx, order)
	if err != nil {
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	if !oc.Notifier.Send(ctx, utils.FormatOrderMessage(order)) {
		log.Printf("Order notification for %s was not delivered", order.ID)
	}

	// The response is the same document that was persisted, no re-fetch.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// GetUserOrders retrieves a user's orders, capped at store.QueryLimit.
func (oc *OrderController) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := oc.Orders.Find(ctx, bson.M{"user_id": userID}, store.FindOpts())
	if err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			http.Error(w, "Error decoding order", http.StatusInternalServerError)
			return
		}
		orders = append(orders, order)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Cursor error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}
