package application

import (
	"context"
	"math"
	"time"

	usertypes "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/application/types"
	"github.com/qa-sandbox/go-demo-user-api/internal/domains/users/domain"
	"github.com/qa-sandbox/go-demo-user-api/internal/domains/users/ports"
)

// Service orchestrates the user collection use cases.
type Service struct {
	repo  ports.Repository
	clock func() time.Time
}

// Option customizes the service.
type Option func(*Service)

// WithClock overrides the timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService wires the service with its store.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ListUsers returns one pagination window over the store in insertion order.
func (s *Service) ListUsers(ctx context.Context, query usertypes.ListUsersQuery) (*usertypes.UserPage, error) {
	if !validPageValue(query.Page) || !validPageValue(query.PerPage) {
		return nil, ErrInvalidPagination
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	total := len(users)
	startF := (query.Page - 1) * query.PerPage
	if startF > float64(total) {
		startF = float64(total)
	}
	endF := startF + query.PerPage
	if endF > float64(total) {
		endF = float64(total)
	}
	page := &usertypes.UserPage{
		Page:       query.Page,
		PerPage:    query.PerPage,
		Total:      total,
		TotalPages: totalPages(total, query.PerPage),
		Users:      users[int(startF):int(endF)],
	}
	return page, nil
}

// ListAllUsers returns the full collection in insertion order.
func (s *Service) ListAllUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// GetUser loads a single record by id.
func (s *Service) GetUser(ctx context.Context, id int64) (domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateUser appends a derived record to the store and echoes the trimmed
// request fields with a fresh timestamp.
func (s *Service) CreateUser(ctx context.Context, input usertypes.CreateUserInput) (*usertypes.CreatedUser, error) {
	name, err := domain.NormalizeName(input.Name)
	if err != nil {
		return nil, err
	}
	job, err := domain.NormalizeJob(input.Job)
	if err != nil {
		return nil, err
	}
	record, err := domain.NewUserFromName(name, job)
	if err != nil {
		return nil, err
	}
	saved, err := s.repo.Append(ctx, *record)
	if err != nil {
		return nil, err
	}
	created := &usertypes.CreatedUser{
		ID:        saved.ID,
		Name:      name,
		Job:       job,
		CreatedAt: s.clock(),
	}
	return created, nil
}

// UpdateUser validates the target exists and any provided fields, then
// returns the canned echo. The stored record is never mutated; clients
// assert update semantics against the echo without real persistence.
func (s *Service) UpdateUser(ctx context.Context, input usertypes.UpdateUserInput) (*usertypes.UpdateEcho, error) {
	if _, err := s.repo.GetByID(ctx, input.ID); err != nil {
		return nil, err
	}
	echo := &usertypes.UpdateEcho{
		Name:      usertypes.Unchanged,
		Job:       usertypes.Unchanged,
		UpdatedAt: s.clock(),
	}
	if input.Name != nil {
		name, err := domain.NormalizeName(*input.Name)
		if err != nil {
			return nil, err
		}
		echo.Name = name
	}
	if input.Job != nil {
		job, err := domain.NormalizeJob(*input.Job)
		if err != nil {
			return nil, err
		}
		echo.Job = job
	}
	return echo, nil
}

// DeleteUser removes every record with the given id.
func (s *Service) DeleteUser(ctx context.Context, input usertypes.DeleteUserInput) error {
	_, err := s.repo.DeleteByID(ctx, input.ID)
	return err
}

func validPageValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 1
}

func totalPages(total int, perPage float64) int {
	pages := int(math.Ceil(float64(total) / perPage))
	if pages < 1 {
		return 1
	}
	return pages
}

var _ ports.Service = (*Service)(nil)
