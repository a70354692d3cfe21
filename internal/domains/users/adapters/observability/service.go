package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	usertypes "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/application/types"
	userdomain "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/domain"
	userports "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/ports"
)

const tracerName = "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/adapters/observability/service"

// Service decorates the user service with tracing, logging, and metrics.
type Service struct {
	inner   userports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core user service.
func New(inner userports.Service, opts ...Option) userports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) ListUsers(ctx context.Context, query usertypes.ListUsersQuery) (*usertypes.UserPage, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.ListUsers", trace.WithAttributes(
		attribute.Float64("users.page", query.Page),
		attribute.Float64("users.per_page", query.PerPage),
	))
	defer span.End()
	page, err := s.inner.ListUsers(ctx, query)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list users")
	}
	s.metrics.recordPageServed(ctx)
	return page, nil
}

func (s *Service) ListAllUsers(ctx context.Context) ([]userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.ListAllUsers")
	defer span.End()
	return s.inner.ListAllUsers(ctx)
}

func (s *Service) GetUser(ctx context.Context, id int64) (userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.GetUser", trace.WithAttributes(attribute.Int64("user.id", id)))
	defer span.End()
	return s.inner.GetUser(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, input usertypes.CreateUserInput) (*usertypes.CreatedUser, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.CreateUser")
	defer span.End()
	s.logInfo(ctx, "creating user", slog.String("name", input.Name))
	created, err := s.inner.CreateUser(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create user", slog.String("name", input.Name))
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "user created", slog.Int64("id", created.ID))
	return created, nil
}

func (s *Service) UpdateUser(ctx context.Context, input usertypes.UpdateUserInput) (*usertypes.UpdateEcho, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.UpdateUser", trace.WithAttributes(attribute.Int64("user.id", input.ID)))
	defer span.End()
	echo, err := s.inner.UpdateUser(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update user", slog.Int64("id", input.ID))
	}
	return echo, nil
}

func (s *Service) DeleteUser(ctx context.Context, input usertypes.DeleteUserInput) error {
	ctx, span := s.tracer.Start(ctx, "UserService.DeleteUser", trace.WithAttributes(attribute.Int64("user.id", input.ID)))
	defer span.End()
	if err := s.inner.DeleteUser(ctx, input); err != nil {
		return s.handleError(ctx, span, err, "failed to delete user", slog.Int64("id", input.ID))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "user deleted", slog.Int64("id", input.ID))
	return nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

type serviceMetrics struct {
	usersCreated metric.Int64Counter
	usersDeleted metric.Int64Counter
	pagesServed  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("users.service.created", metric.WithDescription("Number of users created"))
	deleted, _ := m.Int64Counter("users.service.deleted", metric.WithDescription("Number of users deleted"))
	pages, _ := m.Int64Counter("users.service.pages_served", metric.WithDescription("Number of pagination windows served"))
	return serviceMetrics{usersCreated: created, usersDeleted: deleted, pagesServed: pages}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.usersCreated != nil {
		m.usersCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.usersDeleted != nil {
		m.usersDeleted.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordPageServed(ctx context.Context) {
	if m.pagesServed != nil {
		m.pagesServed.Add(ctx, 1)
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ userports.Service = (*Service)(nil)
