package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/wolfyek/client-gallery/internal/api/middleware"
	"github.com/wolfyek/client-gallery/internal/config"
)

func withAdmin(t *testing.T, admin config.AdminConfig) {
	t.Helper()
	prev := config.Envs.Admin
	config.Envs.Admin = admin
	t.Cleanup(func() { config.Envs.Admin = prev })
}

func postLogin(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	withAdmin(t, config.AdminConfig{Username: "admin", Password: "hunter2"})
	h, _, logs := newTestHandler()

	rec := postLogin(h, `{"username":"admin","password":"hunter2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			session = c
		}
	}
	if session == nil || session.Value == "" {
		t.Fatalf("no session cookie set on login")
	}
	if !session.HttpOnly {
		t.Errorf("session cookie must be HttpOnly")
	}
	if len(logs.Activity) != 1 {
		t.Errorf("login should leave one activity entry, got %d", len(logs.Activity))
	}
}

func TestLoginRejections(t *testing.T) {
	withAdmin(t, config.AdminConfig{Username: "admin", Password: "hunter2"})
	h, _, _ := newTestHandler()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"wrong password", `{"username":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"wrong username", `{"username":"root","password":"hunter2"}`, http.StatusUnauthorized},
		{"empty password", `{"username":"admin","password":""}`, http.StatusBadRequest},
		{"unknown field", `{"username":"admin","password":"hunter2","admin":true}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := postLogin(h, tt.body); rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestLoginRefusedWhenNoPasswordConfigured(t *testing.T) {
	withAdmin(t, config.AdminConfig{Username: "admin"})
	h, _, _ := newTestHandler()

	if rec := postLogin(h, `{"username":"admin","password":"anything"}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 when no admin password is set", rec.Code)
	}
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	// Hash takes precedence over the plaintext fallback.
	withAdmin(t, config.AdminConfig{Username: "admin", Password: "plaintext", PasswordHash: string(hash)})
	h, _, _ := newTestHandler()

	if rec := postLogin(h, `{"username":"admin","password":"hunter2"}`); rec.Code != http.StatusOK {
		t.Errorf("hash login: status = %d", rec.Code)
	}
	if rec := postLogin(h, `{"username":"admin","password":"plaintext"}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("plaintext must not work once a hash is set, got %d", rec.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	h, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			if c.MaxAge >= 0 || c.Value != "" {
				t.Errorf("logout cookie = %+v, want expired and empty", c)
			}
			return
		}
	}
	t.Errorf("logout did not touch the session cookie")
}

func TestAdminAuthMiddleware(t *testing.T) {
	withAdmin(t, config.AdminConfig{Username: "admin", Password: "hunter2"})
	h, _, _ := newTestHandler()

	protected := middleware.AdminAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	// Without a cookie the request never reaches the handler.
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/galleries", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no cookie: status = %d, want 401", rec.Code)
	}

	// A cookie minted by login passes.
	login := postLogin(h, `{"username":"admin","password":"hunter2"}`)
	req := httptest.NewRequest(http.MethodGet, "/admin/galleries", nil)
	for _, c := range login.Result().Cookies() {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("valid cookie: status = %d, want 204", rec.Code)
	}

	// Garbage tokens are rejected.
	req = httptest.NewRequest(http.MethodGet, "/admin/galleries", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "not-a-jwt"})
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", rec.Code)
	}
}
