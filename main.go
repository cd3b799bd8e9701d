// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/nurmuhammad-fullstack/HotDog/controllers"
	"github.com/nurmuhammad-fullstack/HotDog/middleware"
	"github.com/nurmuhammad-fullstack/HotDog/routes"
	"github.com/nurmuhammad-fullstack/HotDog/store"
	"github.com/nurmuhammad-fullstack/HotDog/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	mongoURL := os.Getenv("MONGO_URL")
	dbName := os.Getenv("DB_NAME")
	if mongoURL == "" || dbName == "" {
		log.Fatal("MONGO_URL and DB_NAME must be set")
	}

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	client, db, err := store.Connect(ctx, mongoURL, dbName)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("MongoDB disconnect: %v", err)
		}
	}()

	collections := store.NewCollections(db)

	// Initialize the notification service
	telegramService := utils.NewTelegramService()

	// Initialize controllers
	userController := controllers.NewUserController(collections.Users)
	productController := controllers.NewProductController(collections.Products)
	orderController := controllers.NewOrderController(collections.Orders, telegramService)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, orderController)
	router.Use(middleware.LoggingMiddleware)

	// Cross-origin callers, permit-all by default
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "*"
	}
	origins := strings.Split(corsOrigins, ",")
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: cors(router),
	}

	go func() {
		fmt.Printf("Server is running on port %s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Wait for an interrupt and drain in-flight requests
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
