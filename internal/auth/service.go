package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/franchescafernanda/Soft-Jobs/internal/model"
	"github.com/franchescafernanda/Soft-Jobs/internal/repository"
)

// MetricsRecorder は認証フローのメトリクス記録インターフェース。
// internal/metricsのCollectorが実装する。
type MetricsRecorder interface {
	RecordRegistration(result string)
	RecordLogin(result string)
	RecordHashLatency(duration time.Duration)
}

// AccountService は登録・ログインのビジネスロジックを提供する。
// 登録: バリデーション → ハッシュ化 → 永続化。
// ログイン: バリデーション → 検索 → 検証 → トークン発行。
type AccountService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   *TokenService
	metrics  MetricsRecorder
}

// NewAccountService はAccountServiceを生成する。
// metricsはnilを許容する（記録をスキップする）。
func NewAccountService(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	tokens *TokenService,
	metrics MetricsRecorder,
) *AccountService {
	return &AccountService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		metrics:  metrics,
	}
}

// Register は新規ユーザーを登録し、作成したレコードを返す。
// バリデーション失敗はMissingField系エラー、email重複はDuplicateAccount
// エラーを返す。永続化は単一のINSERTであり、中断時に部分書き込みは残らない。
func (s *AccountService) Register(ctx context.Context, input model.RegistrationInput) (*model.User, error) {
	if err := ValidateRegistration(input); err != nil {
		s.recordRegistration("invalid")
		return nil, err
	}

	start := time.Now()
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.recordRegistration("error")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if s.metrics != nil {
		s.metrics.RecordHashLatency(time.Since(start))
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Language:     input.Language,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.recordRegistration("error")
		return nil, err
	}

	s.recordRegistration("success")
	slog.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// Login は認証情報を検証し、成功時に署名付きトークンを返す。
// ユーザー不存在とパスワード不一致はどちらもBadCredentialsエラーに
// 集約し、外部にはアカウントの存在有無を区別させない。
func (s *AccountService) Login(ctx context.Context, creds model.Credentials) (string, error) {
	if err := ValidateLogin(creds); err != nil {
		s.recordLogin("invalid")
		return "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, creds.Email)
	if err != nil {
		s.recordLogin("error")
		return "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		s.recordLogin("rejected")
		slog.Warn("login rejected: unknown email")
		return "", model.NewBadCredentialsError()
	}

	if !s.hasher.Verify(creds.Password, user.PasswordHash) {
		s.recordLogin("rejected")
		slog.Warn("login rejected: password mismatch",
			slog.String("user_id", user.ID),
		)
		return "", model.NewBadCredentialsError()
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		s.recordLogin("error")
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.recordLogin("success")
	slog.Info("user logged in", slog.String("user_id", user.ID))

	return token, nil
}

// GetUserByEmail は指定メールアドレスのユーザーを取得する。
// 認証済みリクエストの保護リソース読み取りで使用する。
// 見つからない場合はUserNotFoundエラーを返す。
func (s *AccountService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError()
	}
	return user, nil
}

func (s *AccountService) recordRegistration(result string) {
	if s.metrics != nil {
		s.metrics.RecordRegistration(result)
	}
}

func (s *AccountService) recordLogin(result string) {
	if s.metrics != nil {
		s.metrics.RecordLogin(result)
	}
}
