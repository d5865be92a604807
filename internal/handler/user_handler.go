// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/franchescafernanda/Soft-Jobs/internal/middleware"
	"github.com/franchescafernanda/Soft-Jobs/internal/model"
)

// AccountServiceInterface はユーザーハンドラーが必要とするサービスインターフェース。
type AccountServiceInterface interface {
	// Register は新規ユーザーを登録し、作成したレコードを返す。
	Register(ctx context.Context, input model.RegistrationInput) (*model.User, error)
	// Login は認証情報を検証し、成功時に署名付きトークンを返す。
	Login(ctx context.Context, creds model.Credentials) (string, error)
	// GetUserByEmail は指定メールアドレスのユーザーを取得する。
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// UserHandler はユーザー登録・ログイン・取得のHTTPハンドラー。
type UserHandler struct {
	service AccountServiceInterface
}

// NewUserHandler はUserHandlerを生成する。
func NewUserHandler(service AccountServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// registerRequest はユーザー登録リクエストのボディ。
// フィールド名は既存クライアントとの互換のため原文どおり（rol/lenguage）。
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"rol"`
	Language string `json:"lenguage"`
}

// loginRequest はログインリクエストのボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse はログイン成功時のレスポンス。
type loginResponse struct {
	Token string `json:"token"`
}

// userResponse はユーザー情報のAPIレスポンス。
// password_hashは含めない。
type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"rol"`
	Language string `json:"lenguage"`
}

// toUserResponse はUserからパスワードハッシュを除いたレスポンスを生成する。
func toUserResponse(user *model.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Email:    user.Email,
		Role:     user.Role,
		Language: user.Language,
	}
}

// Register はユーザー登録を処理する。
// POST /usuarios
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return
	}

	user, err := h.service.Register(r.Context(), model.RegistrationInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Language: req.Language,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toUserResponse(user))
}

// Login はログインを処理し、トークンを返す。
// POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError())
		return
	}

	token, err := h.service.Login(r.Context(), model.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loginResponse{Token: token})
}

// Me はトークンのアイデンティティに対応するユーザー情報を返す。
// GET /usuarios
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	email, err := middleware.EmailFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewTokenRequiredError())
		return
	}

	user, err := h.service.GetUserByEmail(r.Context(), email)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toUserResponse(user))
}
