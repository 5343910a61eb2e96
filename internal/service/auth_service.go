package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nghetinhport/tos-bigdata-api/internal/auth"
	"github.com/nghetinhport/tos-bigdata-api/internal/config"
	"github.com/nghetinhport/tos-bigdata-api/internal/domain"
	"github.com/nghetinhport/tos-bigdata-api/internal/repository"
	apperrors "github.com/nghetinhport/tos-bigdata-api/pkg/util"
)

const msgBadCredentials = "Tên đăng nhập hoặc mật khẩu không đúng"

// LoginThrottle counts failed login attempts per username. The Redis wrapper
// implements it; a nil throttle disables throttling.
type LoginThrottle interface {
	FailedLogins(ctx context.Context, username string) (int64, error)
	RecordFailedLogin(ctx context.Context, username string, window time.Duration) error
	ResetFailedLogins(ctx context.Context, username string) error
}

// AuthService runs the credential and token flow: registry lookup, dual-path
// password verification, token issuance. It holds no session state.
type AuthService struct {
	users       repository.UserRepository
	tokenMgr    *auth.TokenManager
	throttle    LoginThrottle
	maxAttempts int
	window      time.Duration
	logger      *zap.Logger
}

// NewAuthService builds the service. throttle may be nil.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, throttle LoginThrottle, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:       users,
		tokenMgr:    auth.NewTokenManager(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenTTLHours),
		throttle:    throttle,
		maxAttempts: cfg.LoginMaxAttempts,
		window:      cfg.AttemptWindow(),
		logger:      logger,
	}
}

// Login authenticates the username/password pair and issues a bearer token.
// Unknown user, disabled user and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if err := s.checkThrottle(ctx, username); err != nil {
		return "", time.Time{}, err
	}

	user, err := s.authenticate(username, password)
	if err != nil {
		s.recordFailure(ctx, username)
		s.logger.Warn("login failed", zap.String("username", username))
		return "", time.Time{}, apperrors.NewUnauthorized(msgBadCredentials)
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(user.Username)
	if err != nil {
		return "", time.Time{}, err
	}

	s.resetFailures(ctx, username)
	s.logger.Info("login successful", zap.String("username", username))
	return token, expiresAt, nil
}

func (s *AuthService) authenticate(username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user.Disabled {
		return nil, repository.ErrUserNotFound
	}
	if err := auth.VerifyPassword(user.StoredCredential, password); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) checkThrottle(ctx context.Context, username string) error {
	if s.throttle == nil || s.maxAttempts <= 0 {
		return nil
	}
	n, err := s.throttle.FailedLogins(ctx, username)
	if err != nil {
		// A broken throttle must not lock callers out.
		s.logger.Warn("login throttle unavailable", zap.Error(err))
		return nil
	}
	if n >= int64(s.maxAttempts) {
		return apperrors.NewTooManyRequests("Quá nhiều lần đăng nhập sai, vui lòng thử lại sau")
	}
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailedLogin(ctx, username, s.window); err != nil {
		s.logger.Warn("recording failed login", zap.Error(err))
	}
}

func (s *AuthService) resetFailures(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.ResetFailedLogins(ctx, username); err != nil {
		s.logger.Warn("resetting failed logins", zap.Error(err))
	}
}

// TokenTTL exposes the configured token lifetime for the login response.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenMgr.TTL()
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
