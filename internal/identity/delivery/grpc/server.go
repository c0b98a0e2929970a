package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/identity/usecase/query"
)

// PrincipalService resolves principals for other services
type PrincipalService interface {
	GetPrincipal(ctx context.Context, ref *wrapperspb.StringValue) (*structpb.Struct, error)
}

// PrincipalServiceDesc describes backoffice.v1.PrincipalService. Messages are well-known types,
// so no generated code is needed.
var PrincipalServiceDesc = grpc.ServiceDesc{
	ServiceName: "backoffice.v1.PrincipalService",
	HandlerType: (*PrincipalService)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetPrincipal",
			Handler:    getPrincipalHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "backoffice/v1/principal.proto",
}

func getPrincipalHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PrincipalService).GetPrincipal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetPrincipalMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PrincipalService).GetPrincipal(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// GetPrincipalMethod is the full method name of GetPrincipal
const GetPrincipalMethod = "/backoffice.v1.PrincipalService/GetPrincipal"

// PrincipalServer implements PrincipalService
type PrincipalServer struct {
	users *query.UserQueryHandler
}

// NewPrincipalServer creates a new principal server
func NewPrincipalServer(users *query.UserQueryHandler) *PrincipalServer {
	return &PrincipalServer{users: users}
}

// Register attaches the service to s
func (s *PrincipalServer) Register(gs *grpc.Server) {
	gs.RegisterService(&PrincipalServiceDesc, s)
}

// GetPrincipal returns the stored profile and role for an external reference
func (s *PrincipalServer) GetPrincipal(ctx context.Context, ref *wrapperspb.StringValue) (*structpb.Struct, error) {
	if ref.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "external reference is required")
	}

	user, err := s.users.Lookup(ctx, ref.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return principalToProto(user)
}

func principalToProto(user *domain.User) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(map[string]any{
		"id":           float64(user.ID),
		"external_ref": user.ExternalRef,
		"username":     user.Username,
		"email":        user.Email,
		"role":         string(user.Role),
		"elevated":     user.IsElevated(),
	})
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode principal")
	}
	return out, nil
}

func toStatus(err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindUnauthenticated:
		return status.Error(codes.Unauthenticated, apperr.PublicMessage(err))
	case apperr.KindForbidden:
		return status.Error(codes.PermissionDenied, apperr.PublicMessage(err))
	case apperr.KindNotFound:
		return status.Error(codes.NotFound, apperr.PublicMessage(err))
	case apperr.KindInvalidInput:
		return status.Error(codes.InvalidArgument, apperr.PublicMessage(err))
	case apperr.KindConflict:
		return status.Error(codes.AlreadyExists, apperr.PublicMessage(err))
	default:
		return status.Error(codes.Internal, apperr.PublicMessage(err))
	}
}
