package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/autonomie/internal/db"
	"github.com/terraincognita07/autonomie/internal/i18n"
	"github.com/terraincognita07/autonomie/internal/services"
	"go.uber.org/zap"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *db.Repositories) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "autonomie-api-test.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewEmbeddedManager("fr")
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	repositories := db.NewRepositories(database, zap.NewNop())
	handler, err := NewHandler(NewServices(repositories, services.NewClock(time.UTC)), testSecretKey, i18nManager, false, zap.NewNop())
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, repositories
}

type testResponse struct {
	status  int
	body    []byte
	cookies []*http.Cookie
}

func (response testResponse) decode(t *testing.T, target any) {
	t.Helper()
	if err := json.Unmarshal(response.body, target); err != nil {
		t.Fatalf("decode %q: %v", string(response.body), err)
	}
}

func (response testResponse) authCookie() string {
	for _, cookie := range response.cookies {
		if cookie.Name == authCookieName {
			return cookie.Value
		}
	}
	return ""
}

func sendJSON(t *testing.T, app *fiber.App, method string, path string, payload any, authToken string, headers ...string) testResponse {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	for index := 0; index+1 < len(headers); index += 2 {
		request.Header.Set(headers[index], headers[index+1])
	}
	if authToken != "" {
		request.AddCookie(&http.Cookie{Name: authCookieName, Value: authToken})
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("app.Test(%s %s): %v", method, path, err)
	}
	defer response.Body.Close()

	content, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return testResponse{status: response.StatusCode, body: content, cookies: response.Cookies()}
}

func registerTestUser(t *testing.T, app *fiber.App, email string) (string, string) {
	t.Helper()

	response := sendJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"name":     "Test",
		"email":    email,
		"password": "StrongPass1",
	}, "")
	if response.status != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", email, response.status, string(response.body))
	}

	result := mutationBody{}
	response.decode(t, &result)
	token := response.authCookie()
	if token == "" {
		t.Fatalf("register %s: expected auth cookie", email)
	}
	return result.ID, token
}

type mutationBody struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

func mustMutate(t *testing.T, app *fiber.App, method string, path string, payload any, token string, wantStatus int) string {
	t.Helper()

	response := sendJSON(t, app, method, path, payload, token)
	if response.status != wantStatus {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, wantStatus, response.status, string(response.body))
	}
	result := mutationBody{}
	response.decode(t, &result)
	if !result.Success || result.ID == "" {
		t.Fatalf("%s %s: unexpected mutation body %s", method, path, string(response.body))
	}
	return result.ID
}

func todayKey() string {
	return time.Now().UTC().Format(services.DateLayout)
}
