package ports

import (
	"context"
	"errors"

	"github.com/qa-sandbox/go-demo-user-api/internal/domains/users/domain"
)

// ErrNotFound signals the identifier is absent from the store.
var ErrNotFound = errors.New("user not found")

// Repository is the store port: an ordered collection of user records plus a
// monotonically increasing identifier counter. List returns records in
// insertion order; Append assigns the next identifier when the record carries
// none; DeleteByID removes every record with the identifier and reports how
// many were removed, or ErrNotFound when there were none.
type Repository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	Append(ctx context.Context, user domain.User) (domain.User, error)
	DeleteByID(ctx context.Context, id int64) (int, error)
}
