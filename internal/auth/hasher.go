// Package auth はパスワードハッシュ、トークン発行・検証、
// 認証情報バリデーションを提供する。
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher はパスワードの一方向ハッシュ化と検証のインターフェース。
type PasswordHasher interface {
	// Hash は平文パスワードのソルト付きダイジェストを生成する。
	// 同一入力でも呼び出しごとに異なる出力を返す（ソルトは毎回新規生成）。
	Hash(password string) (string, error)

	// Verify は平文パスワードとダイジェストの一致を定数時間で検証する。
	// 形式不正なダイジェストを含め、不一致はすべてfalseを返す。
	Verify(password, hash string) bool
}

// BcryptHasher はbcryptによるPasswordHasherの実装。
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher はBcryptHasherを生成する。
// costが0以下の場合はbcrypt.DefaultCost（10）を使用する。
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash は平文パスワードのbcryptダイジェストを生成する。
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify は平文パスワードとbcryptダイジェストの一致を検証する。
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// compile-time interface check
var _ PasswordHasher = (*BcryptHasher)(nil)
