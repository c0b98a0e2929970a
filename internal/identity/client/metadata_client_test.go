package client

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tair/backoffice/internal/identity/domain"
)

type metadataService interface {
	UpdatePublicMetadata(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error)
}

type fakeMetadataService struct {
	got  *structpb.Struct
	fail bool
}

func (f *fakeMetadataService) UpdatePublicMetadata(_ context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if f.fail {
		return nil, status.Error(codes.Unavailable, "identity provider down")
	}
	f.got = req
	return &emptypb.Empty{}, nil
}

var fakeServiceDesc = grpc.ServiceDesc{
	ServiceName: "identity.v1.MetadataService",
	HandlerType: (*metadataService)(nil),
	Methods: []grpc.MethodDesc{{
		MethodName: "UpdatePublicMetadata",
		Handler: func(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
			req := new(structpb.Struct)
			if err := dec(req); err != nil {
				return nil, err
			}
			return srv.(metadataService).UpdatePublicMetadata(ctx, req)
		},
	}},
}

func dial(t *testing.T, svc *fakeMetadataService) *MetadataClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	server.RegisterService(&fakeServiceDesc, svc)
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	c := NewMetadataClientWithConn(conn)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestMetadataClient_UpdateRole(t *testing.T) {
	svc := &fakeMetadataService{}
	c := dial(t, svc)

	require.NoError(t, c.UpdateRole(context.Background(), "user_2abc", domain.RoleModerator))
	require.NotNil(t, svc.got)
	assert.Equal(t, "user_2abc", svc.got.Fields["user_id"].GetStringValue())
	assert.Equal(t, "MODERATOR", svc.got.Fields["public_metadata"].GetStructValue().Fields["role"].GetStringValue())
}

func TestMetadataClient_UpdateRoleFailure(t *testing.T) {
	c := dial(t, &fakeMetadataService{fail: true})

	err := c.UpdateRole(context.Background(), "user_2abc", domain.RoleAdmin)
	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}
