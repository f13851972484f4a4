package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/lifelink/lifelink-api/internal/core/domain"
	"github.com/lifelink/lifelink-api/internal/core/ports"
	"github.com/lifelink/lifelink-api/internal/core/service"
	"github.com/lifelink/lifelink-api/internal/infrastructure/db/memory"
)

type echoAsker struct{}

func (echoAsker) Ask(_ context.Context, _, text string) string { return "you said: " + text }

type testServer struct {
	srv      *httptest.Server
	sessions *service.SessionRegistry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := zerolog.Nop()
	slot := memory.NewSlot()
	store := service.OpenUserStore(context.Background(), slot, "", log)

	sessions := service.NewSessionRegistry(store, service.NewViewRouter(), nil, echoAsker{}, service.SessionOptions{
		MasterPassword: domain.DefaultPassword,
	}, log)

	e := NewRouter(Dependencies{
		Auth:         service.NewAuthService(sessions, "test-secret", time.Hour),
		Sessions:     sessions,
		Directory:    service.NewDirectoryService(store, domain.Centers(), domain.Doctors()),
		Themes:       service.NewThemeService(slot, "", domain.ThemeLight, log),
		Readiness:    map[string]ports.Pinger{"memory": slot},
		JWTSecret:    "test-secret",
		PasswordHint: domain.DefaultPassword,
		Logger:       log,
		Registerer:   prometheus.NewRegistry(),
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return &testServer{srv: srv, sessions: sessions}
}

func (ts *testServer) do(t *testing.T, method, path, token, body string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, ts.srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func (ts *testServer) login(t *testing.T, email string) string {
	t.Helper()
	code, body := ts.do(t, http.MethodPost, "/auth/login", "", `{"email":"`+email+`","password":"1234"}`)
	if code != http.StatusOK {
		t.Fatalf("login %s: %d %v", email, code, body)
	}
	return body["token"].(string)
}

func TestRouter_LoginErrors(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		body string
		code int
		msg  string
	}{
		{`{"email":"nobody@x.com","password":"1234"}`, http.StatusNotFound, "Account not found. Please create an account first."},
		{`{"email":"alex@test.com","password":"wrong"}`, http.StatusUnauthorized, "Incorrect password. The default is 1234."},
		{`{"email":"alex@test.com"}`, http.StatusUnprocessableEntity, "password is required"},
		{`not json`, http.StatusBadRequest, "invalid payload"},
	}
	for _, tc := range cases {
		code, body := ts.do(t, http.MethodPost, "/auth/login", "", tc.body)
		if code != tc.code || body["error"] != tc.msg {
			t.Fatalf("%s: got %d %v, want %d %q", tc.body, code, body["error"], tc.code, tc.msg)
		}
	}
	if ts.sessions.Len() != 0 {
		t.Fatalf("failed logins left %d sessions", ts.sessions.Len())
	}
}

func TestRouter_RegisterFlow(t *testing.T) {
	ts := newTestServer(t)

	code, body := ts.do(t, http.MethodPost, "/auth/register", "", `{"name":"Jane Doe","email":"JANE@X.com"}`)
	if code != http.StatusCreated {
		t.Fatalf("register: %d %v", code, body)
	}
	account := body["session"].(map[string]any)["account"].(map[string]any)
	if account["role"] != "DONOR" || account["lastDonationDate"] != "Never" {
		t.Fatalf("unexpected account %v", account)
	}

	code, body = ts.do(t, http.MethodPost, "/auth/register", "", `{"name":"Again","email":"jane@x.com"}`)
	if code != http.StatusConflict || body["error"] != "This email is already registered. Please sign in." {
		t.Fatalf("duplicate: %d %v", code, body)
	}

	ts.login(t, "jane@x.com")
}

func TestRouter_DemoAndNavigation(t *testing.T) {
	ts := newTestServer(t)

	code, body := ts.do(t, http.MethodPost, "/auth/demo", "", `{"role":"ADMIN"}`)
	if code != http.StatusOK {
		t.Fatalf("demo: %d %v", code, body)
	}
	token := body["token"].(string)
	if view := body["session"].(map[string]any)["view"]; view != "SYSTEM_OVERVIEW" {
		t.Fatalf("expected admin landing view, got %v", view)
	}

	code, body = ts.do(t, http.MethodPost, "/session/navigate", token, `{"view":"USER_MANAGEMENT"}`)
	if code != http.StatusOK || body["view"] != "USER_MANAGEMENT" || body["show_back"] != true {
		t.Fatalf("navigate: %d %v", code, body)
	}

	code, body = ts.do(t, http.MethodPost, "/session/navigate", token, `{"view":"DONATE"}`)
	if code != http.StatusOK || body["view"] != "SYSTEM_OVERVIEW" {
		t.Fatalf("expected clamp, got %d %v", code, body)
	}

	code, body = ts.do(t, http.MethodGet, "/views/current", token, "")
	if code != http.StatusOK || body["kind"] != "admin_overview" {
		t.Fatalf("current view: %d %v", code, body)
	}
}

func TestRouter_RoleAccess(t *testing.T) {
	ts := newTestServer(t)
	donor := ts.login(t, "alex@test.com")
	hospital := ts.login(t, "hospital@lifelink.com")
	admin := ts.login(t, "admin@lifelink.com")

	if code, _ := ts.do(t, http.MethodGet, "/directory/donors", donor, ""); code != http.StatusForbidden {
		t.Fatalf("donor reached donor registry: %d", code)
	}
	code, body := ts.do(t, http.MethodGet, "/directory/donors?blood_type=A-", hospital, "")
	if code != http.StatusOK || body["count"] != float64(1) {
		t.Fatalf("hospital donor search: %d %v", code, body)
	}

	if code, _ := ts.do(t, http.MethodGet, "/admin/overview", hospital, ""); code != http.StatusForbidden {
		t.Fatalf("hospital reached admin overview: %d", code)
	}
	code, body = ts.do(t, http.MethodGet, "/admin/overview", admin, "")
	if code != http.StatusOK || body["total_users"] != float64(5) || body["total_donations"] != float64(19) {
		t.Fatalf("admin overview: %d %v", code, body)
	}

	code, body = ts.do(t, http.MethodGet, "/directory/doctors?specialty=Hematology", donor, "")
	if code != http.StatusOK || body["count"] != float64(2) {
		t.Fatalf("doctors: %d %v", code, body)
	}

	code, body = ts.do(t, http.MethodPost, "/directory/doctors/d1/book", donor, "")
	if code != http.StatusCreated || body["doctor_id"] != "d1" || body["account_id"] != "1" {
		t.Fatalf("book: %d %v", code, body)
	}
	if code, _ = ts.do(t, http.MethodPost, "/directory/doctors/d99/book", donor, ""); code != http.StatusNotFound {
		t.Fatalf("book unknown doctor: %d", code)
	}
}

func TestRouter_LogoutInvalidatesToken(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "alex@test.com")

	if code, _ := ts.do(t, http.MethodGet, "/session", token, ""); code != http.StatusOK {
		t.Fatalf("session before logout: %d", code)
	}
	if code, _ := ts.do(t, http.MethodPost, "/auth/logout", token, ""); code != http.StatusNoContent {
		t.Fatalf("logout: %d", code)
	}
	if code, _ := ts.do(t, http.MethodGet, "/session", token, ""); code != http.StatusUnauthorized {
		t.Fatalf("token still valid after logout: %d", code)
	}
	if code, _ := ts.do(t, http.MethodGet, "/session", "", ""); code != http.StatusUnauthorized {
		t.Fatalf("anonymous session access: %d", code)
	}
}

func TestRouter_Chat(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "alex@test.com")

	code, body := ts.do(t, http.MethodPost, "/chat/messages", token, `{"text":"Can I donate?"}`)
	if code != http.StatusOK {
		t.Fatalf("chat: %d %v", code, body)
	}
	msgs := body["messages"].([]any)
	if len(msgs) != 3 || msgs[2].(map[string]any)["text"] != "you said: Can I donate?" {
		t.Fatalf("unexpected transcript %v", msgs)
	}
}

func TestRouter_ThemeAndOps(t *testing.T) {
	ts := newTestServer(t)

	if code, body := ts.do(t, http.MethodGet, "/preferences/theme", "", ""); code != http.StatusOK || body["theme"] != "light" {
		t.Fatalf("default theme: %d %v", code, body)
	}
	if code, _ := ts.do(t, http.MethodPut, "/preferences/theme", "", `{"theme":"dark"}`); code != http.StatusOK {
		t.Fatalf("set theme: %d", code)
	}
	if _, body := ts.do(t, http.MethodGet, "/preferences/theme", "", ""); body["theme"] != "dark" {
		t.Fatalf("theme not persisted: %v", body)
	}

	if code, _ := ts.do(t, http.MethodGet, "/health", "", ""); code != http.StatusOK {
		t.Fatalf("health: %d", code)
	}
	if code, body := ts.do(t, http.MethodGet, "/health/ready", "", ""); code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("ready: %d %v", code, body)
	}
}
