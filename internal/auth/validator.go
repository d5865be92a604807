package auth

import "github.com/franchescafernanda/Soft-Jobs/internal/model"

// ValidateLogin はログインリクエストの必須項目を検証する。
// emailとpasswordのいずれかが空の場合はエラーを返す。
// 入出力のみに依存する純粋関数であり、I/Oも状態変更も行わない。
func ValidateLogin(creds model.Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return model.NewMissingCredentialsError()
	}
	return nil
}

// ValidateRegistration は登録リクエストの必須項目を検証する。
// 認証情報（email/password）の欠落とプロフィール項目（rol/lenguage）の
// 欠落は区別してエラーを返す（2段階チェック）。
func ValidateRegistration(input model.RegistrationInput) error {
	if input.Email == "" || input.Password == "" {
		return model.NewMissingCredentialsError()
	}
	if input.Role == "" || input.Language == "" {
		return model.NewMissingFieldsError()
	}
	return nil
}
