// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// クライアントに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, account, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeMissingCredentials = "MISSING_CREDENTIALS"
	ErrCodeMissingFields      = "MISSING_FIELDS"
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeDuplicateAccount   = "DUPLICATE_ACCOUNT"
	ErrCodeBadCredentials     = "BAD_CREDENTIALS"
	ErrCodeTokenRequired      = "TOKEN_REQUIRED"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewMissingCredentialsError はemail/password欠落エラーを生成する。
func NewMissingCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeMissingCredentials,
		Message:  "Email y password son obligatorios.",
		Category: "validation",
		Action:   "Incluya email y password en la solicitud.",
	}
}

// NewMissingFieldsError はプロフィール項目（rol/lenguage）欠落エラーを生成する。
func NewMissingFieldsError() *APIError {
	return &APIError{
		Code:     ErrCodeMissingFields,
		Message:  "Todos los campos son obligatorios.",
		Category: "validation",
		Action:   "Incluya email, password, rol y lenguage en la solicitud.",
	}
}

// NewInvalidRequestError はリクエストボディ解析失敗エラーを生成する。
func NewInvalidRequestError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  "El cuerpo de la solicitud no es válido.",
		Category: "validation",
		Action:   "Envíe un cuerpo JSON válido.",
	}
}

// NewDuplicateAccountError はメールアドレス重複エラーを生成する。
func NewDuplicateAccountError() *APIError {
	return &APIError{
		Code:     ErrCodeDuplicateAccount,
		Message:  "El email ya está registrado.",
		Category: "account",
		Action:   "Utilice otro email o inicie sesión.",
	}
}

// NewBadCredentialsError は認証失敗エラーを生成する。
// ユーザー不存在とパスワード不一致の両方に同一のエラーを返し、
// アカウント列挙を防止する。
func NewBadCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeBadCredentials,
		Message:  "Credenciales inválidas.",
		Category: "auth",
		Action:   "Verifique su email y password.",
	}
}

// NewTokenRequiredError はトークン未提示エラーを生成する。
func NewTokenRequiredError() *APIError {
	return &APIError{
		Code:     ErrCodeTokenRequired,
		Message:  "Token requerido.",
		Category: "auth",
		Action:   "Incluya la cabecera Authorization: Bearer <token>.",
	}
}

// NewInvalidTokenError はトークン検証失敗エラーを生成する。
// 署名不正・期限切れ・形式不正を区別せず同一のエラーを返す。
func NewInvalidTokenError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidToken,
		Message:  "Token inválido.",
		Category: "auth",
		Action:   "Inicie sesión de nuevo para obtener un token válido.",
	}
}

// NewUserNotFoundError はユーザーが見つからない場合のエラーを生成する。
func NewUserNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  "Usuario no encontrado.",
		Category: "account",
		Action:   "Regístrese de nuevo.",
	}
}

// NewInternalError は内部エラーの統一レスポンスを生成する。
// 詳細はログのみに記録し、クライアントには一般的なメッセージを返す。
func NewInternalError() *APIError {
	return &APIError{
		Code:     ErrCodeInternal,
		Message:  "Se produjo un error interno.",
		Category: "system",
		Action:   "Inténtelo de nuevo más tarde.",
	}
}
