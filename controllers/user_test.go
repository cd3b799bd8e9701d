package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurmuhammad-fullstack/HotDog/models"
	"github.com/nurmuhammad-fullstack/HotDog/utils"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		body models.RegisterRequest
		want string
	}{
		{
			name: "short name",
			body: models.RegisterRequest{Name: "A", Phone: "998901234567", Password: "secret123"},
			want: "Name must be at least 2 characters long",
		},
		{
			name: "name of spaces",
			body: models.RegisterRequest{Name: "   ", Phone: "998901234567", Password: "secret123"},
			want: "Name must be at least 2 characters long",
		},
		{
			name: "short phone",
			body: models.RegisterRequest{Name: "Aziz", Phone: "12345678", Password: "secret123"},
			want: "Invalid phone number",
		},
		{
			name: "short password",
			body: models.RegisterRequest{Name: "Aziz", Phone: "998901234567", Password: "12345"},
			want: "Password must be at least 6 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeCollection{}
			uc := NewUserController(users)

			rec := postJSON(t, uc.Register, "/api/auth/register", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, strings.TrimSpace(rec.Body.String()))
			assert.Empty(t, users.inserted, "nothing may be written on a validation failure")
		})
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	users := &fakeCollection{countResult: 1}
	uc := NewUserController(users)

	rec := postJSON(t, uc.Register, "/api/auth/register",
		models.RegisterRequest{Name: "Aziz", Phone: "998901234567", Password: "secret123"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "This phone number is already registered", strings.TrimSpace(rec.Body.String()))
	assert.Empty(t, users.inserted)
}

func TestRegisterSuccess(t *testing.T) {
	users := &fakeCollection{}
	uc := NewUserController(users)

	rec := postJSON(t, uc.Register, "/api/auth/register",
		models.RegisterRequest{Name: "Aziz", Phone: "998901234567", Password: "secret123"})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "Aziz", resp.Name)
	assert.Equal(t, "998901234567", resp.Phone)
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err, "user id must be a generated uuid")

	// The stored document carries a verifiable bcrypt hash, the response
	// never carries the password in any form.
	require.Len(t, users.inserted, 1)
	stored, ok := users.inserted[0].(models.User)
	require.True(t, ok)
	assert.True(t, utils.CheckPassword("secret123", stored.Password))
	assert.NotContains(t, body, "secret123")
	assert.NotContains(t, body, stored.Password)
}

func TestLoginUnknownPhone(t *testing.T) {
	users := &fakeCollection{} // no user stored
	uc := NewUserController(users)

	rec := postJSON(t, uc.Login, "/api/auth/login",
		models.LoginRequest{Phone: "998901234567", Password: "secret123"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, loginFailedMessage, strings.TrimSpace(rec.Body.String()))
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	users := &fakeCollection{findOneDoc: models.User{
		ID: "user-1", Name: "Aziz", Phone: "998901234567", Password: hash,
	}}
	uc := NewUserController(users)

	rec := postJSON(t, uc.Login, "/api/auth/login",
		models.LoginRequest{Phone: "998901234567", Password: "wrong-pass"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// Identical message for unknown phone and wrong password
	assert.Equal(t, loginFailedMessage, strings.TrimSpace(rec.Body.String()))
}

func TestLoginSuccess(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	users := &fakeCollection{findOneDoc: models.User{
		ID: "user-1", Name: "Aziz", Phone: "998901234567", Password: hash,
	}}
	uc := NewUserController(users)

	rec := postJSON(t, uc.Login, "/api/auth/login",
		models.LoginRequest{Phone: "998901234567", Password: "secret123"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, models.UserResponse{ID: "user-1", Name: "Aziz", Phone: "998901234567"}, resp)
	assert.NotContains(t, body, hash)
}
