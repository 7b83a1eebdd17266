package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/provider"
	"github.com/storefront-next/internal/repository"
	"github.com/storefront-next/internal/service"
)

func newAuthHandlerTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api_auth_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{
		JWT:      config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost, PasswordMinLength: 6},
	}
	container := &provider.Container{
		Config:      cfg,
		AuthService: service.NewAuthService(repository.NewUserRepository(db), cfg),
	}

	h := New(container)
	r := gin.New()
	r.PUT("/api/v1/auth/signup", h.SignUp)
	r.POST("/api/v1/auth/login", h.Login)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response failed: %v (body: %s)", err, w.Body.String())
	}
	return w, decoded
}

func TestAPISignUpAndLogin(t *testing.T) {
	r := newAuthHandlerTest(t)

	w, body := doJSON(t, r, http.MethodPut, "/api/v1/auth/signup",
		`{"email":"alice@example.com","password":"secret-password","name":"Alice"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if body["user_id"] == nil || body["message"] == nil {
		t.Fatalf("unexpected signup body: %v", body)
	}

	w, body = doJSON(t, r, http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"secret-password"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if token, _ := body["token"].(string); token == "" {
		t.Fatalf("expected token in body, got %v", body)
	}
}

func TestAPISignUpValidationReturns422(t *testing.T) {
	r := newAuthHandlerTest(t)

	w, body := doJSON(t, r, http.MethodPut, "/api/v1/auth/signup",
		`{"email":"not-an-email","password":"ab"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d (%s)", w.Code, w.Body.String())
	}
	if body["message"] == nil {
		t.Fatalf("expected message field, got %v", body)
	}
	fields, ok := body["data"].([]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("expected per-field data, got %v", body["data"])
	}
}

func TestAPISignUpDuplicateReturns422(t *testing.T) {
	r := newAuthHandlerTest(t)
	payload := `{"email":"alice@example.com","password":"secret-password"}`

	if w, _ := doJSON(t, r, http.MethodPut, "/api/v1/auth/signup", payload); w.Code != http.StatusCreated {
		t.Fatalf("first signup failed: %d", w.Code)
	}
	w, body := doJSON(t, r, http.MethodPut, "/api/v1/auth/signup", payload)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for duplicate email, got %d", w.Code)
	}
	if body["message"] == nil {
		t.Fatalf("expected message field, got %v", body)
	}
}

func TestAPILoginBadCredentialsReturns401(t *testing.T) {
	r := newAuthHandlerTest(t)
	if w, _ := doJSON(t, r, http.MethodPut, "/api/v1/auth/signup",
		`{"email":"alice@example.com","password":"secret-password"}`); w.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d", w.Code)
	}

	for _, payload := range []string{
		`{"email":"alice@example.com","password":"wrong-password"}`,
		`{"email":"nobody@example.com","password":"secret-password"}`,
	} {
		w, body := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", payload)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d (%s)", w.Code, w.Body.String())
		}
		if body["message"] == nil {
			t.Fatalf("expected message field, got %v", body)
		}
	}
}
