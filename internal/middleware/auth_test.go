package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/franchescafernanda/Soft-Jobs/internal/auth"
)

// newProtectedHandler は認証ミドルウェア通過後のemailを記録するハンドラーを返す。
func newProtectedHandler(gotEmail *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if email, err := EmailFromContext(r.Context()); err == nil {
			*gotEmail = email
		}
		w.WriteHeader(http.StatusOK)
	})
}

// TestAuthMiddleware_ValidToken_InjectsEmail は有効なトークンで
// リクエストが通過し、emailクレームがコンテキストに入ることを検証する。
func TestAuthMiddleware_ValidToken_InjectsEmail(t *testing.T) {
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	token, err := tokens.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	var gotEmail string
	mw := NewAuthMiddleware(tokens, nil)
	handler := mw(newProtectedHandler(&gotEmail))

	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotEmail != "a@x.com" {
		t.Errorf("email in context = %q, want %q", gotEmail, "a@x.com")
	}
}

// TestAuthMiddleware_MissingToken_Returns401 はヘッダー欠落・形式不正が
// 401で拒否されることを検証する。
func TestAuthMiddleware_MissingToken_Returns401(t *testing.T) {
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	mw := NewAuthMiddleware(tokens, nil)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"no token segment", "Bearer"},
		{"wrong scheme", "Basic abc123"},
		{"empty token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
			if called {
				t.Error("downstream handler called despite missing token")
			}
		})
	}
}

// TestAuthMiddleware_InvalidToken_Returns403 は署名不正・期限切れ・
// 形式不正のトークンがすべて403で拒否されることを検証する。
func TestAuthMiddleware_InvalidToken_Returns403(t *testing.T) {
	secret := []byte("test-secret")
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	expired, err := auth.NewTokenService(secret, time.Hour).
		WithClock(func() time.Time { return issuedAt.Add(-2 * time.Hour) }).
		Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	foreign, err := auth.NewTokenService([]byte("other-secret"), time.Hour).Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tokens := auth.NewTokenService(secret, time.Hour).
		WithClock(func() time.Time { return issuedAt })
	mw := NewAuthMiddleware(tokens, nil)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", foreign},
		{"garbage", "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusForbidden {
				t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
			}
			if called {
				t.Error("downstream handler called despite invalid token")
			}
		})
	}
}

// TestExtractBearerToken はAuthorizationヘッダーの解析を検証する。
func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"empty", "", ""},
		{"scheme only", "Bearer", ""},
		{"wrong scheme", "Basic abc", ""},
		{"lowercase scheme", "bearer abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractBearerToken(tt.header); got != tt.want {
				t.Errorf("extractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
