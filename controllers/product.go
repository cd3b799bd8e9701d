package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nurmuhammad-fullstack/HotDog/models"
	"github.com/nurmuhammad-fullstack/HotDog/store"
)

// ProductController handles catalog requests.
type ProductController struct {
	Products store.Collection
}

// NewProductController creates a new ProductController.
func NewProductController(products store.Collection) *ProductController {
	return &ProductController{Products: products}
}

// GetProducts retrieves the catalog, capped at store.QueryLimit entries.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := pc.Products.Find(ctx, bson.M{}, store.FindOpts())
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			http.Error(w, "Error reading products", http.StatusInternalServerError)
			return
		}
		products = append(products, product)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// GetProductByID retrieves a single product by its id.
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var product models.Product
	err := pc.Products.FindOne(ctx, bson.M{"id": id}, store.FindOneOpts()).Decode(&product)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// SeedProducts replaces the whole catalog with the demo one: delete all,
// then bulk-insert with freshly generated ids.
func (pc *ProductController) SeedProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if _, err := pc.Products.DeleteMany(ctx, bson.M{}); err != nil {
		http.Error(w, "Error clearing products", http.StatusInternalServerError)
		return
	}

	catalog := DemoCatalog()
	docs := make([]interface{}, len(catalog))
	for i, p := range catalog {
		docs[i] = p
	}

	if _, err := pc.Products.InsertMany(ctx, docs); err != nil {
		http.Error(w, "Error seeding products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": fmt.Sprintf("%d products seeded", len(catalog)),
	})
}

func intPtr(v int) *int { return &v }

// DemoCatalog returns the fixed demo catalog. Identifiers are generated on
// every call, so re-seeding keeps the count but changes the ids.
func DemoCatalog() []models.Product {
	return []models.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Classic Hotdog",
			Description: "Traditional hotdog with sausage, ketchup and mustard",
			Price:       18000,
			Image:       "https://images.unsplash.com/photo-1518208573537-70867b0f77d8?w=400",
			Category:    "hotdog",
			IsPopular:   true,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Mega Hotdog",
			Description: "Oversized hotdog with two sausages, cheese and every sauce",
			Price:       28000,
			Image:       "https://images.unsplash.com/photo-1654851979266-dcd5655a747b?w=400",
			Category:    "hotdog",
			IsPopular:   true,
			Discount:    intPtr(15),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Cheese Hotdog",
			Description: "Hotdog loaded with mozzarella and cheddar",
			Price:       24000,
			Image:       "https://images.unsplash.com/photo-1612392062631-94c61ac06691?w=400",
			Category:    "hotdog",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Spicy Hotdog",
			Description: "Hot one with jalapenos and spicy sauce",
			Price:       22000,
			Image:       "https://images.unsplash.com/photo-1619740455993-9d701c8a8f87?w=400",
			Category:    "hotdog",
		},
		{
			ID:          uuid.NewString(),
			Name:        "BBQ Hotdog",
			Description: "BBQ-sauce hotdog with onion and jalapenos",
			Price:       25000,
			Image:       "https://images.unsplash.com/photo-1496054545419-8d94c6d9a5b2?w=400",
			Category:    "hotdog",
			IsPopular:   true,
			Discount:    intPtr(10),
		},
		{
			ID:          uuid.NewString(),
			Name:        "French Fries",
			Description: "Crispy fries with the house spice mix",
			Price:       12000,
			Image:       "https://images.unsplash.com/photo-1630384060421-cb20d0e0649d?w=400",
			Category:    "sides",
			IsPopular:   true,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Cheese Fries",
			Description: "Fries under melted cheese",
			Price:       16000,
			Image:       "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=400",
			Category:    "sides",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Coca-Cola",
			Description: "Chilled Coca-Cola 0.5L",
			Price:       8000,
			Image:       "https://images.unsplash.com/photo-1639834482101-5f332c3b701f?w=400",
			Category:    "drinks",
			IsPopular:   true,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Fanta",
			Description: "Chilled Fanta 0.5L",
			Price:       8000,
			Image:       "https://images.unsplash.com/photo-1624517452488-04869289c4ca?w=400",
			Category:    "drinks",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Water",
			Description: "Still drinking water 0.5L",
			Price:       4000,
			Image:       "https://images.unsplash.com/photo-1560023907-5f339617ea30?w=400",
			Category:    "drinks",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Combo Set 1",
			Description: "Classic Hotdog + French Fries + Coca-Cola",
			Price:       35000,
			Image:       "https://images.unsplash.com/photo-1561758033-d89a9ad46330?w=400",
			Category:    "combo",
			IsPopular:   true,
			Discount:    intPtr(20),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Combo Set 2",
			Description: "Mega Hotdog + Cheese Fries + any drink",
			Price:       48000,
			Image:       "https://images.unsplash.com/photo-1606755962773-d324e0a13086?w=400",
			Category:    "combo",
			IsPopular:   true,
			Discount:    intPtr(25),
		},
	}
}
