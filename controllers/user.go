package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nurmuhammad-fullstack/HotDog/models"
	"github.com/nurmuhammad-fullstack/HotDog/store"
	"github.com/nurmuhammad-fullstack/HotDog/utils"
)

// loginFailedMessage is deliberately the same for an unknown phone and a
// wrong password so the response does not reveal which factor failed.
const loginFailedMessage = "Invalid phone number or password"

// UserController handles registration and login.
type UserController struct {
	Users store.Collection
}

// NewUserController creates a new UserController.
func NewUserController(users store.Collection) *UserController {
	return &UserController{Users: users}
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Check if the phone number is already registered
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	count, err := uc.Users.CountDocuments(ctx, bson.M{"phone": req.Phone})
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if count > 0 {
		http.Error(w, "This phone number is already registered", http.StatusBadRequest)
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Password:  hashedPassword,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	_, err = uc.Users.InsertOne(ctx, user)
	if err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.UserResponse{ID: user.ID, Name: user.Name, Phone: user.Phone})
}

// Login handles user authentication
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&creds)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	var user models.User
	err = uc.Users.FindOne(ctx, bson.M{"phone": creds.Phone}, store.FindOneOpts()).Decode(&user)
	if err != nil {
		http.Error(w, loginFailedMessage, http.StatusUnauthorized)
		return
	}

	if !utils.CheckPassword(creds.Password, user.Password) {
		http.Error(w, loginFailedMessage, http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.UserResponse{ID: user.ID, Name: user.Name, Phone: user.Phone})
}
