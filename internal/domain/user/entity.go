package user

import (
	"errors"
	"time"
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already taken")
)

type (
	ID   = int64
	User struct {
		ID           ID
		Username     string
		Email        string
		PasswordHash string

		CreatedAt time.Time
	}
	Users []*User
)
