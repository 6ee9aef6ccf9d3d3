package user

import (
	"time"
)

type (
	User struct {
		ID           int64
		Username     string
		Email        string
		PasswordHash string

		CreatedAt time.Time
	}
	Users []*User
)

const (
	constraintUsername = "users_username_key"
	constraintEmail    = "users_email_key"
)
