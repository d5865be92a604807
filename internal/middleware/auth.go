// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/franchescafernanda/Soft-Jobs/internal/auth"
	"github.com/franchescafernanda/Soft-Jobs/internal/model"
)

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// emailContextKey はリクエストコンテキストに認証済みemailを格納するためのキー。
var emailContextKey = contextKey("email")

// TokenVerifier はトークン検証に必要なインターフェース。
// auth.TokenServiceの部分集合として定義する。
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// StatusRecorder はHTTPステータスコードのメトリクス記録インターフェース。
type StatusRecorder interface {
	RecordTokenVerification(result string)
}

// NewAuthMiddleware はAuthorizationヘッダーのBearerトークンを検証する
// ミドルウェアを返す。ヘッダーまたはトークンが欠落している場合は401、
// 検証に失敗した場合は403を返す（失敗理由は区別せず、詳細はログのみに残す）。
// 検証成功時はアイデンティティクレームをリクエストコンテキストに注入する。
// metricsはnilを許容する。
func NewAuthMiddleware(verifier TokenVerifier, metrics StatusRecorder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Authorizationヘッダーからトークンを取り出す
			token := extractBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				if metrics != nil {
					metrics.RecordTokenVerification("missing")
				}
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewTokenRequiredError())
				return
			}

			// 2. トークンの署名と有効期限を検証
			claims, err := verifier.Verify(token)
			if err != nil {
				if metrics != nil {
					metrics.RecordTokenVerification("invalid")
				}
				slog.Warn("token verification failed",
					slog.String("reason", err.Error()),
				)
				WriteErrorResponse(w, http.StatusForbidden, model.NewInvalidTokenError())
				return
			}

			if metrics != nil {
				metrics.RecordTokenVerification("success")
			}

			// 3. 認証済みemailをコンテキストに注入
			ctx := context.WithValue(r.Context(), emailContextKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken はAuthorizationヘッダー値からBearerトークンを取り出す。
// 期待する形式は "Bearer <token>"。該当しない場合は空文字を返す。
func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// EmailFromContext はリクエストコンテキストから認証済みemailを取得する。
// 認証ミドルウェアを通過したリクエストでのみ有効。
func EmailFromContext(ctx context.Context) (string, error) {
	email, ok := ctx.Value(emailContextKey).(string)
	if !ok || email == "" {
		return "", fmt.Errorf("email not found in context")
	}
	return email, nil
}

// ContextWithEmail はコンテキストに認証済みemailを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailContextKey, email)
}
