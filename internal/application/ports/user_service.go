package ports

import (
	"context"

	"file-uploader/internal/domain/user"
)

type UserService interface {
	Signup(ctx context.Context, username, email, password string) (*user.User, error)
}
