package ports

import (
	"context"
	"errors"
)

var (
	ErrMissingEmail       = errors.New("email is required")
	ErrMissingPassword    = errors.New("password is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service performs the simulated login.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}
