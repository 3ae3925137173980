package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"stylehub-be/internal/bootstrap"
	"stylehub-be/internal/config"
	"stylehub-be/internal/dto"
	"stylehub-be/internal/pkg/serverutils"
	"stylehub-be/internal/server"
	"stylehub-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupApp builds the full application against the database named in
// DB_CONNECTION_STRING. Tests are skipped when no database is configured.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
		os.Setenv("JWT_SECRET", "integration_test_secret")
	}

	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	return srv.GetApp()
}

func TestRegisterAndLoginFlow(t *testing.T) {
	app := setupApp(t)

	email := fmt.Sprintf("buyer-%d@example.com", time.Now().UnixNano())

	// Register
	registerReq := dto.RegisterRequest{
		Email:    email,
		Password: "supersecret1",
		FullName: "Integration Buyer",
	}
	body, _ := json.Marshal(registerReq)
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var registerRes serverutils.APIResponse[dto.AuthResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&registerRes))
	assert.NotEmpty(t, registerRes.Data.Token)
	assert.Equal(t, "customer", registerRes.Data.User.Role)

	// Login with the same credentials
	loginReq := dto.LoginRequest{Email: email, Password: "supersecret1"}
	body, _ = json.Marshal(loginReq)
	req = httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var loginRes serverutils.APIResponse[dto.AuthResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginRes))
	token := loginRes.Data.Token
	assert.NotEmpty(t, token)

	// The buyer can see their (empty) cart
	req = httptest.NewRequest("GET", "/api/cart/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// A customer token must not open the admin console
	req = httptest.NewRequest("GET", "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestCatalogIsPublic(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{"/api/categories", "/api/products/", "/api/bundles/"} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode, path)
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{"/api/cart/", "/api/orders/", "/api/cancellations/", "/api/users/me"} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode, path)
	}
}
