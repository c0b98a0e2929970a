package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/backoffice/internal/identity/domain"
)

var tracer = otel.Tracer("identity-repository")

// TracingUserRepository wraps a UserRepository with spans
type TracingUserRepository struct {
	next domain.UserRepository
}

// NewTracingUserRepository decorates next with tracing
func NewTracingUserRepository(next domain.UserRepository) *TracingUserRepository {
	return &TracingUserRepository{next: next}
}

func (r *TracingUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.User.Create",
		trace.WithAttributes(attribute.String("user.username", user.Username)),
	)
	defer span.End()

	err := r.next.Create(ctx, user)
	record(span, err)
	if err == nil {
		span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	}
	return err
}

func (r *TracingUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.User.FindByID",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	defer span.End()

	user, err := r.next.FindByID(ctx, id)
	record(span, err)
	return user, err
}

func (r *TracingUserRepository) FindByExternalRef(ctx context.Context, ref string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.User.FindByExternalRef")
	defer span.End()

	user, err := r.next.FindByExternalRef(ctx, ref)
	record(span, err)
	if err == nil {
		span.SetAttributes(attribute.String("user.role", string(user.Role)))
	}
	return user, err
}

func (r *TracingUserRepository) FindByRoles(ctx context.Context, roles ...domain.Role) ([]domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.User.FindByRoles")
	defer span.End()

	users, err := r.next.FindByRoles(ctx, roles...)
	record(span, err)
	span.SetAttributes(attribute.Int("users.count", len(users)))
	return users, err
}

func (r *TracingUserRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.User.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	users, err := r.next.FindAll(ctx, limit, offset)
	record(span, err)
	return users, err
}

func (r *TracingUserRepository) UpdateRole(ctx context.Context, id uint, role domain.Role, hook domain.RoleChangeHook) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.User.UpdateRole",
		trace.WithAttributes(
			attribute.Int("user.id", int(id)),
			attribute.String("user.role", string(role)),
		),
	)
	defer span.End()

	user, err := r.next.UpdateRole(ctx, id, role, hook)
	record(span, err)
	return user, err
}

func record(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
