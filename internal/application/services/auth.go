package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"file-uploader/internal/application/ports"
	"file-uploader/internal/domain"
	"file-uploader/internal/domain/user"
	"file-uploader/internal/infrastructure/jwt"
	"file-uploader/internal/infrastructure/metrics"
)

var (
	ErrInvalidCredentials    = fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	ErrInvalidSession        = fmt.Errorf("%w: invalid session", domain.ErrUnauthorized)
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	userRepository user.Repository
	jwtService     *jwt.Service
	sessionTTL     time.Duration
	mCounter       *prometheus.CounterVec
}

func NewAuthService(
	userRepository user.Repository,
	jwtService *jwt.Service,
	sessionTTL time.Duration,
	mCounter *prometheus.CounterVec,
) ports.Auth {
	return &AuthService{
		userRepository: userRepository,
		jwtService:     jwtService,
		sessionTTL:     sessionTTL,
		mCounter:       mCounter,
	}
}

func (as *AuthService) Login(ctx context.Context, username, password string) (*user.User, error) {
	u, err := as.userRepository.FetchUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		as.mCounter.WithLabelValues(metrics.LoginFailed).Inc()
		return nil, ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		as.mCounter.WithLabelValues(metrics.LoginFailed).Inc()
		return nil, ErrInvalidCredentials
	}

	as.mCounter.WithLabelValues(metrics.LoginSuccess).Inc()

	return u, nil
}

func (as *AuthService) IssueToken(u *user.User) (string, error) {
	token, err := as.jwtService.GenerateJWT(u.ID, u.Username, as.sessionTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}

func (as *AuthService) Authenticate(ctx context.Context, token string) (*user.User, error) {
	claims, err := as.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	u, err := as.userRepository.FetchUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidSession
	}

	return u, nil
}
