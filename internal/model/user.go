// Package model はドメインモデルを定義する。
package model

import "time"

// User は登録済みユーザーを表す。
// PasswordHashはbcryptダイジェストであり、平文パスワードは保持しない。
// PasswordHashはログ・APIレスポンスに含めてはならない。
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	Language     string
	CreatedAt    time.Time
}

// Credentials はログインリクエストの認証情報を表す。
// リクエストスコープの一時データであり、永続化しない。
type Credentials struct {
	Email    string
	Password string
}

// RegistrationInput はユーザー登録リクエストの入力を表す。
// Passwordはハッシュ化後に破棄される。
type RegistrationInput struct {
	Email    string
	Password string
	Role     string
	Language string
}
