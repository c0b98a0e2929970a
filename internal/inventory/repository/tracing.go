package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// TracingSellingRepository wraps a SellingRepository with spans
type TracingSellingRepository struct {
	next domain.SellingRepository
}

// NewTracingSellingRepository creates a new repository with tracing
func NewTracingSellingRepository(next domain.SellingRepository) *TracingSellingRepository {
	return &TracingSellingRepository{next: next}
}

// Deduct with tracing
func (r *TracingSellingRepository) Deduct(ctx context.Context, selling *domain.ProductSelling) error {
	ctx, span := tracer.Start(ctx, "repository.Deduct",
		trace.WithAttributes(
			attribute.Int("product_purchase.id", int(selling.ProductPurchaseID)),
			attribute.String("product_selling.amount", selling.SellingAmount.String()),
		),
	)
	defer span.End()

	err := r.next.Deduct(ctx, selling)
	if err != nil {
		span.SetAttributes(attribute.String("error.kind", apperr.KindOf(err).String()))
		if apperr.KindOf(err) == apperr.KindInternal {
			span.RecordError(err)
		}
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("product_selling.id", int(selling.ID)))
	return nil
}

// FindAll with tracing
func (r *TracingSellingRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.ProductSelling, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("limit", limit),
			attribute.Int("offset", offset),
		),
	)
	defer span.End()

	sellings, err := r.next.FindAll(ctx, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(sellings)))
	return sellings, nil
}
