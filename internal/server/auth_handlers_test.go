package server

import (
	"net/http"
	"testing"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(s *Server) *fiber.App {
	app := fiber.New()
	app.Post("/api/auth/signup", s.Signup)
	app.Post("/api/auth/login", s.Login)
	return app
}

func TestSignupAndLogin(t *testing.T) {
	s, db := setupTestServer(t)
	app := newAuthApp(s)

	signup := fiber.Map{
		"username": "new_user",
		"email":    "new@example.com",
		"password": "Sup3r-secure-pass!",
	}

	resp := postJSON(t, app, "/api/auth/signup", signup)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeJSON[map[string]any](t, resp)
	assert.NotEmpty(t, created["token"])

	var user models.User
	require.NoError(t, db.Where("email = ?", "new@example.com").First(&user).Error)
	assert.Equal(t, "new_user", user.Username)
	assert.NotEqual(t, "Sup3r-secure-pass!", user.Password, "password must be stored hashed")

	// Duplicate signup conflicts.
	resp = postJSON(t, app, "/api/auth/signup", signup)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Login with the right password succeeds.
	resp = postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "new@example.com",
		"password": "Sup3r-secure-pass!",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	loggedIn := decodeJSON[map[string]any](t, resp)
	assert.NotEmpty(t, loggedIn["token"])

	// Wrong password is rejected without leaking which field was wrong.
	resp = postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "new@example.com",
		"password": "Wrong-password-1!",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	out := decodeJSON[models.ErrorResponse](t, resp)
	assert.Equal(t, models.CodeUnauthenticated, out.Code)
}

func TestSignup_Validation(t *testing.T) {
	s, _ := setupTestServer(t)
	app := newAuthApp(s)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"Missing fields", fiber.Map{"username": "someone"}},
		{"Bad username", fiber.Map{"username": "x", "email": "a@b.co", "password": "Sup3r-secure-pass!"}},
		{"Bad email", fiber.Map{"username": "someone", "email": "nope", "password": "Sup3r-secure-pass!"}},
		{"Weak password", fiber.Map{"username": "someone", "email": "a@b.co", "password": "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/auth/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			out := decodeJSON[models.ErrorResponse](t, resp)
			assert.Equal(t, models.CodeValidation, out.Code)
		})
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	s, _ := setupTestServer(t)
	app := newAuthApp(s)

	resp := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "ghost@example.com",
		"password": "Sup3r-secure-pass!",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
