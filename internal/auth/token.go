package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// トークン検証の失敗理由を表すセンチネルエラー。
var (
	// ErrTokenMalformed は3部構成の署名付きフォーマットとして
	// 解釈できない入力に対して返される。
	ErrTokenMalformed = errors.New("malformed token")
	// ErrSignatureInvalid は現在の秘密鍵で署名が一致しない場合に返される。
	ErrSignatureInvalid = errors.New("invalid token signature")
	// ErrTokenExpired は有効期限を過ぎたトークンに対して返される。
	ErrTokenExpired = errors.New("token expired")
)

// Claims はトークンに埋め込むクレームセットを表す。
// Emailがアイデンティティクレームとなる。
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService はHMAC署名付きの時限トークンを発行・検証する。
// 秘密鍵はプロセス起動時に1回注入し、以後変更しない。
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService はTokenServiceを生成する。
// ttlが0以下の場合は1時間を使用する。
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock は時刻取得関数を差し替えたTokenServiceを返す。
// 有効期限のテストで使用する。
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	return &TokenService{
		secret: s.secret,
		ttl:    s.ttl,
		now:    now,
	}
}

// Issue はemailをアイデンティティクレームとして埋め込んだ
// HS256署名付きトークンを発行する。有効期限は発行時刻 + TTL。
func (s *TokenService) Issue(email string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify はトークンの署名と有効期限を検証し、クレームセットを返す。
// 失敗理由に応じてErrTokenMalformed、ErrSignatureInvalid、
// ErrTokenExpiredのいずれかを返す。
// 署名アルゴリズムはHS256のみ受け付ける。
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})

	switch {
	case err == nil:
		// fall through
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	default:
		return nil, ErrTokenMalformed
	}

	if !token.Valid {
		return nil, ErrSignatureInvalid
	}

	return claims, nil
}
