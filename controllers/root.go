package controllers

import (
	"encoding/json"
	"net/http"
)

// Root returns the service banner.
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Hotdog UZ API",
		"version": "1.0",
	})
}
