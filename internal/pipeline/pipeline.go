// Package pipeline runs every mutation through the same gates: authenticate, load the
// caller's user record, authorize, validate, mutate, then notify and publish after commit.
package pipeline

import (
	"context"
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/backoffice/internal/apperr"
	identity "github.com/tair/backoffice/internal/identity/domain"
	notification "github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/kafka"
	"github.com/tair/backoffice/pkg/auth"
	"github.com/tair/backoffice/pkg/logger"
)

var tracer = otel.Tracer("backoffice-pipeline")

// UserLookup loads the stored user for a principal
type UserLookup interface {
	FindByExternalRef(ctx context.Context, ref string) (*identity.User, error)
}

// Notifier receives notices after a successful mutation. It must not fail the caller.
type Notifier interface {
	Notify(ctx context.Context, notices ...notification.Notice)
}

// EventPublisher announces committed mutations
type EventPublisher interface {
	PublishMutation(ctx context.Context, event kafka.MutationEvent) error
}

// Actor is the authenticated caller of an operation
type Actor struct {
	Ref string
	// User is nil only for self-provisioning operations
	User *identity.User
}

// Role returns the actor's role, or USER when no record is loaded
func (a Actor) Role() identity.Role {
	if a.User == nil {
		return identity.RoleUser
	}
	return a.User.Role
}

// Scope returns the read scope for the actor
func (a Actor) Scope() identity.Scope {
	return identity.ScopeFor(a.Role(), a.Ref)
}

// Operation describes one mutation run by Execute
type Operation[P any, R any] struct {
	Name     string
	Action   identity.Action
	Resource identity.Resource
	// SelfProvision skips the user lookup and role check; only a principal is required
	SelfProvision bool
	// Check runs after tag validation; its error is reported as invalid input unless already classified
	Check func(ctx context.Context, actor Actor, payload P) error
	// Mutate performs the write. Repositories own their transactions.
	Mutate  func(ctx context.Context, actor Actor, payload P) (R, error)
	Notices func(actor Actor, result R) []notification.Notice
	// EntityID identifies the mutated row in the published event
	EntityID func(result R) uint
	Message  string
}

// Result is the success payload of an operation
type Result[R any] struct {
	Message string `json:"message"`
	Data    R      `json:"data"`
}

// Executor holds the collaborators shared by every operation
type Executor struct {
	users    UserLookup
	notifier Notifier
	events   EventPublisher
	validate *validator.Validate
	outcomes *prometheus.CounterVec
}

// NewExecutor creates an executor and registers its metrics
func NewExecutor(users UserLookup, notifier Notifier, events EventPublisher, reg prometheus.Registerer) *Executor {
	outcomes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_operations_total",
			Help: "Pipeline operations by name and outcome",
		},
		[]string{"operation", "outcome"},
	)
	reg.MustRegister(outcomes)

	return &Executor{
		users:    users,
		notifier: notifier,
		events:   events,
		validate: NewValidator(),
		outcomes: outcomes,
	}
}

// Authorize resolves the principal, loads its user record and checks the policy.
// Queries use it directly; mutations go through Execute.
func (e *Executor) Authorize(ctx context.Context, action identity.Action, resource identity.Resource) (Actor, error) {
	principal, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return Actor{}, apperr.Unauthenticated("Unauthorized")
	}

	user, err := e.users.FindByExternalRef(ctx, principal.ExternalRef)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return Actor{}, apperr.NotFound("User not found")
		}
		return Actor{}, apperr.Internal("failed to load user", err)
	}

	if err := identity.Authorize(principal.ExternalRef, user, action, resource); err != nil {
		return Actor{}, err
	}

	return Actor{Ref: principal.ExternalRef, User: user}, nil
}

// Principal resolves only the caller's identity, for self-provisioning
func (e *Executor) Principal(ctx context.Context) (Actor, error) {
	principal, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return Actor{}, apperr.Unauthenticated("Unauthorized")
	}
	return Actor{Ref: principal.ExternalRef}, nil
}

// Validate checks struct tags on payload. Non-struct payloads pass.
func (e *Executor) Validate(payload any) error {
	v := reflect.ValueOf(payload)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return apperr.InvalidInput("Request body is required")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	if err := e.validate.Struct(payload); err != nil {
		return ValidationError(err)
	}
	return nil
}

// Execute runs op for payload. Every failure is classified; notices and events are only
// emitted after the mutation committed.
func Execute[P any, R any](ctx context.Context, e *Executor, op Operation[P, R], payload P) (Result[R], error) {
	ctx, span := tracer.Start(ctx, "pipeline."+op.Name,
		trace.WithAttributes(
			attribute.String("operation.name", op.Name),
			attribute.String("operation.action", string(op.Action)),
			attribute.String("operation.resource", string(op.Resource)),
		),
	)
	defer span.End()

	result, actor, err := run(ctx, e, op, payload)
	if err != nil {
		kind := apperr.KindOf(err)
		e.outcomes.WithLabelValues(op.Name, kind.String()).Inc()
		span.SetAttributes(attribute.String("error.kind", kind.String()))
		span.SetStatus(codes.Error, kind.String())

		if kind == apperr.KindInternal {
			span.RecordError(err)
			logger.Error(ctx).Err(err).Str("operation", op.Name).Msg("Operation failed")
		} else {
			logger.Debug(ctx).Err(err).Str("operation", op.Name).Msg("Operation rejected")
		}
		return Result[R]{}, err
	}

	e.outcomes.WithLabelValues(op.Name, "OK").Inc()
	span.SetStatus(codes.Ok, "")

	if op.Notices != nil && e.notifier != nil {
		if notices := op.Notices(actor, result); len(notices) > 0 {
			e.notifier.Notify(ctx, notices...)
		}
	}
	e.publish(ctx, op.Name, op.Action, op.Resource, actor, entityID(op, result))

	logger.Info(ctx).
		Str("operation", op.Name).
		Str("actor", actor.Ref).
		Msg("Operation completed")

	return Result[R]{Message: op.Message, Data: result}, nil
}

func run[P any, R any](ctx context.Context, e *Executor, op Operation[P, R], payload P) (R, Actor, error) {
	var zero R

	var actor Actor
	var err error
	if op.SelfProvision {
		actor, err = e.Principal(ctx)
	} else {
		actor, err = e.Authorize(ctx, op.Action, op.Resource)
	}
	if err != nil {
		return zero, actor, err
	}

	if err := e.Validate(payload); err != nil {
		return zero, actor, err
	}
	if op.Check != nil {
		if err := op.Check(ctx, actor, payload); err != nil {
			var classified *apperr.Error
			if !errors.As(err, &classified) {
				err = apperr.InvalidInput(err.Error())
			}
			return zero, actor, err
		}
	}

	result, err := op.Mutate(ctx, actor, payload)
	if err != nil {
		// Untyped errors become internal
		return zero, actor, apperr.As(err)
	}
	return result, actor, nil
}

func entityID[P any, R any](op Operation[P, R], result R) uint {
	if op.EntityID == nil {
		return 0
	}
	return op.EntityID(result)
}

func (e *Executor) publish(ctx context.Context, name string, action identity.Action, resource identity.Resource, actor Actor, id uint) {
	if e.events == nil {
		return
	}
	event := kafka.MutationEvent{
		Operation: name,
		Resource:  string(resource),
		Action:    string(action),
		EntityID:  id,
		ActorRef:  actor.Ref,
	}
	if err := e.events.PublishMutation(ctx, event); err != nil {
		// Don't fail the mutation, it already committed
		logger.Warn(ctx).Err(err).Str("operation", name).Msg("Failed to publish mutation event")
	}
}
