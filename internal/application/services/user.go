package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"file-uploader/internal/application/ports"
	domain "file-uploader/internal/domain/user"
	"file-uploader/internal/infrastructure/metrics"
)

type UserService struct {
	userRepository domain.Repository
	hashCost       int
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		hashCost:       bcrypt.DefaultCost,
		mCounter:       mCounter,
	}
}

// Signup stores a new user. Uniqueness is left to the database, a conflict
// comes back as domain.ErrUsernameTaken or domain.ErrEmailTaken.
func (us *UserService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), us.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := us.userRepository.CreateUser(ctx, domain.User{
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues(metrics.SignupSuccess).Inc()

	return u, nil
}
