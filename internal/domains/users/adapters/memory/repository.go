package memory

import (
	"context"
	"sync"

	"github.com/qa-sandbox/go-demo-user-api/internal/domains/users/domain"
	"github.com/qa-sandbox/go-demo-user-api/internal/domains/users/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the in-memory user store: an insertion-ordered slice plus an
// identifier counter. A single mutex serializes all access so concurrent
// creates cannot interleave identifier assignment and delete/read never
// observes a half-removed state.
type Repository struct {
	mu     sync.Mutex
	users  []domain.User
	nextID int64
}

// NewRepository builds a store holding the two seed records.
func NewRepository() *Repository {
	r := &Repository{}
	r.Reset()
	return r
}

// Reset restores the seed records and the identifier counter. Contract-test
// provider states rely on this to start from a known store.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = []domain.User{
		{ID: 1, Email: "george.bluth@reqres.in", FirstName: "George", LastName: "Bluth"},
		{ID: 2, Email: "janet.weaver@reqres.in", FirstName: "Janet", LastName: "Weaver"},
	}
	r.nextID = 3
}

func (r *Repository) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]domain.User, len(r.users))
	copy(list, r.users)
	return list, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return domain.User{}, ports.ErrNotFound
}

func (r *Repository) Append(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	} else if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.users = append(r.users, user)
	return user, nil
}

func (r *Repository) DeleteByID(_ context.Context, id int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := make([]domain.User, 0, len(r.users))
	removed := 0
	for _, user := range r.users {
		if user.ID == id {
			removed++
			continue
		}
		kept = append(kept, user)
	}
	if removed == 0 {
		return 0, ports.ErrNotFound
	}
	r.users = kept
	return removed, nil
}
