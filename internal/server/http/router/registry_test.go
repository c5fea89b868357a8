package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/usersystem/internal/app"
	pkgAuth "github.com/polkiloo/usersystem/internal/pkg/auth"
	"github.com/polkiloo/usersystem/internal/storage/memory"
	"github.com/polkiloo/usersystem/internal/usecase"
)

func newRegistryEngine(t *testing.T) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := memory.New()
	users := usecase.NewUserSystem(
		storage.Users(),
		pkgAuth.NewBcryptHasher(bcrypt.MinCost),
		pkgAuth.NewJWTStrategy("secret", pkgAuth.Options{TTL: time.Minute}),
		logger,
	)
	return newEngine(app.NewRegistryFacade(users, storage))
}

func register(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func errorMessage(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v (%s)", err, resp.Body.String())
	}
	msg, _ := payload["error"].(string)
	return msg
}

func count(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/users/count", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for count, got %d", resp.Code)
	}
	return resp.Body.String()
}

func TestRegistryOverHTTPValidationOrder(t *testing.T) {
	engine := newRegistryEngine(t)
	if resp := register(t, engine, `{"name":"João","email":"joao@email.com","password":"abc123"}`); resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for seed user, got %d: %s", resp.Code, resp.Body.String())
	}

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{name: "malformed email", body: `{"name":"N","email":"email.com","password":"abc123"}`, status: http.StatusBadRequest, message: "E-mail inválido"},
		{name: "empty email", body: `{"name":"N","email":"","password":"abc123"}`, status: http.StatusBadRequest, message: "E-mail inválido"},
		{name: "missing email", body: `{"name":"N","password":"abc123"}`, status: http.StatusBadRequest, message: "E-mail inválido"},
		{name: "email checked before password", body: `{"name":"N","email":"email.com","password":""}`, status: http.StatusBadRequest, message: "E-mail inválido"},
		{name: "weak password", body: `{"name":"N","email":"email@teste.com","password":"abc"}`, status: http.StatusBadRequest, message: "Senha fraca"},
		{name: "empty password", body: `{"name":"N","email":"email@teste.com","password":""}`, status: http.StatusBadRequest, message: "Senha fraca"},
		{name: "password checked before duplicate", body: `{"name":"N","email":"joao@email.com","password":"abcdef"}`, status: http.StatusBadRequest, message: "Senha fraca"},
		{name: "duplicate", body: `{"name":"Outro","email":"joao@email.com","password":"abc123"}`, status: http.StatusConflict, message: "E-mail já cadastrado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := register(t, engine, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, resp.Code, resp.Body.String())
			}
			if got := errorMessage(t, resp); got != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, got)
			}
		})
	}

	if got := count(t, engine); got != `{"total":1}` {
		t.Fatalf("failed registrations must not change the count, got %s", got)
	}

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/users?email=joao@email.com", nil))
	var user map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user["name"] != "João" {
		t.Fatalf("expected first registered name to be kept, got %v", user["name"])
	}
}

func TestRegistryOverHTTPAcceptsEmptyName(t *testing.T) {
	engine := newRegistryEngine(t)
	resp := register(t, engine, `{"name":"","email":"email@teste.com","password":"abc123"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	resp = register(t, engine, `{"email":"other@teste.com","password":"abc123"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 without name, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRegistryOverHTTPCountsRegistrations(t *testing.T) {
	engine := newRegistryEngine(t)
	for i := 0; i < 5; i++ {
		body := fmt.Sprintf(`{"name":"User%d","email":"user%d@User.com","password":"pass%d123"}`, i, i, i)
		if resp := register(t, engine, body); resp.Code != http.StatusCreated {
			t.Fatalf("registration %d: expected 201, got %d", i, resp.Code)
		}
	}
	if got := count(t, engine); got != `{"total":5}` {
		t.Fatalf("expected total 5, got %s", got)
	}
}
