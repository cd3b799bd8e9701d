// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"github.com/nurmuhammad-fullstack/HotDog/controllers"
)

// RegisterRoutes sets up all the routes for the application under the
// /api prefix.
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, orderController *controllers.OrderController) {
	api := router.PathPrefix("/api").Subrouter()

	// Auth routes
	api.HandleFunc("/auth/register", userController.Register).Methods("POST")
	api.HandleFunc("/auth/login", userController.Login).Methods("POST")

	// Product routes
	api.HandleFunc("/products", productController.GetProducts).Methods("GET")
	api.HandleFunc("/products/seed", productController.SeedProducts).Methods("POST")
	api.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Order routes
	api.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	api.HandleFunc("/orders/{user_id}", orderController.GetUserOrders).Methods("GET")

	// Service banner
	api.HandleFunc("", controllers.Root).Methods("GET")
	api.HandleFunc("/", controllers.Root).Methods("GET")
}
