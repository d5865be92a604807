// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/franchescafernanda/Soft-Jobs/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// Create はユーザーを作成する。
	// メールアドレスが既に存在する場合はDuplicateAccountエラーを返す。
	// 一意性はDBの一意制約で原子的に保証される。
	Create(ctx context.Context, user *model.User) error

	// FindByEmail は指定メールアドレスのユーザーを取得する。
	// 見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
