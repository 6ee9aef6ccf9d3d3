package ports

import (
	"context"

	"file-uploader/internal/domain/user"
)

type Auth interface {
	// Login returns the user when the password matches its stored hash.
	Login(ctx context.Context, username, password string) (*user.User, error)
	IssueToken(u *user.User) (string, error)
	// Authenticate resolves a session token back to a stored user.
	Authenticate(ctx context.Context, token string) (*user.User, error)
}
