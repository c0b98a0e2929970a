package client

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/pkg/logger"
)

const updatePublicMetadataMethod = "/identity.v1.MetadataService/UpdatePublicMetadata"

// MetadataUpdater mirrors a user's role into the identity provider's public metadata
type MetadataUpdater interface {
	UpdateRole(ctx context.Context, externalRef string, role domain.Role) error
}

// MetadataClient calls the identity provider's metadata service over gRPC
type MetadataClient struct {
	conn    *grpc.ClientConn
	timeout time.Duration
}

// NewMetadataClient connects to the identity provider at address
func NewMetadataClient(address string) (*MetadataClient, error) {
	conn, err := grpc.NewClient(address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to identity provider: %w", err)
	}

	logger.Info(context.Background()).
		Str("address", address).
		Msg("Identity provider client configured")

	return NewMetadataClientWithConn(conn), nil
}

// NewMetadataClientWithConn wraps an existing connection
func NewMetadataClientWithConn(conn *grpc.ClientConn) *MetadataClient {
	return &MetadataClient{conn: conn, timeout: 3 * time.Second}
}

// Close closes the gRPC connection
func (c *MetadataClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// UpdateRole sets public_metadata.role for the user
func (c *MetadataClient) UpdateRole(ctx context.Context, externalRef string, role domain.Role) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		"user_id": externalRef,
		"public_metadata": map[string]any{
			"role": string(role),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to build metadata request: %w", err)
	}

	if err := c.conn.Invoke(ctx, updatePublicMetadataMethod, req, &emptypb.Empty{}); err != nil {
		return fmt.Errorf("failed to update identity provider metadata: %w", err)
	}
	return nil
}

// LogMetadataUpdater stands in for the identity provider when none is configured
type LogMetadataUpdater struct{}

func (LogMetadataUpdater) UpdateRole(ctx context.Context, externalRef string, role domain.Role) error {
	logger.Debug(ctx).
		Str("external_ref", externalRef).
		Str("role", string(role)).
		Msg("Identity provider not configured, role kept locally")
	return nil
}
