package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aitoolhub/aitoolhub/internal/api"
	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/aitoolhub/aitoolhub/internal/store/jsonstore"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// testEnv holds the router and stores needed for API integration tests.
type testEnv struct {
	Router http.Handler
	Stores store.Stores
}

// newTestEnv wires the full router over a JSON-file store in a temp dir.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	stores, err := jsonstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open jsonstore: %v", err)
	}

	logger := zap.NewNop()
	router := api.NewRouter(api.Deps{
		AuthHandlers:   auth.NewHandlers(stores.Users, testSecret, time.Hour, "", logger),
		AuthMiddleware: auth.NewMiddleware(testSecret, logger),
		Stores:         stores,
		Logger:         logger,
	})
	return &testEnv{Router: router, Stores: stores}
}

// registerUser creates an account through the real endpoint and returns its
// token and public user payload.
func registerUser(t *testing.T, env *testEnv, name, email, password string) (string, map[string]any) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"name": name, "email": email, "password": password,
	})
	req := httptest.NewRequest("POST", "/api/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("register %s: status = %d, body: %s", email, rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	return resp.Token, resp.User
}

// adminToken registers the first user, who becomes the admin.
func adminToken(t *testing.T, env *testEnv) string {
	t.Helper()
	token, user := registerUser(t, env, "Admin", "admin@example.com", "hunter22")
	if user["role"] != "admin" {
		t.Fatalf("first registrant role = %v, want admin", user["role"])
	}
	return token
}

// seedTool writes a tool directly into the store.
func seedTool(t *testing.T, env *testEnv, name string, category store.Category, description string) *store.Tool {
	t.Helper()
	tool := &store.Tool{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := env.Stores.Tools.Create(context.Background(), tool); err != nil {
		t.Fatalf("seed tool: %v", err)
	}
	return tool
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, env *testEnv, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// decodeBody decodes a response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v; body: %s", err, rec.Body.String())
	}
}
