package user

import (
	"context"
)

type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByUsername(ctx context.Context, username string) (*User, error)
	// CreateUser returns ErrUsernameTaken or ErrEmailTaken on a uniqueness conflict.
	CreateUser(ctx context.Context, req User) (*User, error)
}
