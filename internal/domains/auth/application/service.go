package application

import (
	"context"

	"github.com/qa-sandbox/go-demo-user-api/internal/domains/auth/domain"
	"github.com/qa-sandbox/go-demo-user-api/internal/domains/auth/ports"
)

// Service implements the simulated login against the fixed demo pair.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Login checks field presence, then the demo pair. Presence means a
// non-empty string; values are compared untrimmed. The user store is never
// consulted.
func (s *Service) Login(_ context.Context, email, password string) (string, error) {
	if email == "" {
		return "", ports.ErrMissingEmail
	}
	if password == "" {
		return "", ports.ErrMissingPassword
	}
	creds := domain.Credentials{Email: email, Password: password}
	if !creds.Match() {
		return "", ports.ErrInvalidCredentials
	}
	return domain.DemoToken, nil
}

var _ ports.Service = (*Service)(nil)
