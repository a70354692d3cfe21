package ports

import (
	"context"

	usertypes "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/application/types"
	"github.com/qa-sandbox/go-demo-user-api/internal/domains/users/domain"
)

// Service defines the user collection use cases exposed to adapters.
type Service interface {
	ListUsers(ctx context.Context, query usertypes.ListUsersQuery) (*usertypes.UserPage, error)
	ListAllUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
	CreateUser(ctx context.Context, input usertypes.CreateUserInput) (*usertypes.CreatedUser, error)
	UpdateUser(ctx context.Context, input usertypes.UpdateUserInput) (*usertypes.UpdateEcho, error)
	DeleteUser(ctx context.Context, input usertypes.DeleteUserInput) error
}
