package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "level.v1alpha1.LevelService"

// Full method names
const (
	RegenerateFullMethod               = "/" + ServiceName + "/Regenerate"
	GetLayoutFullMethod                = "/" + ServiceName + "/GetLayout"
	GetMeshesFullMethod                = "/" + ServiceName + "/GetMeshes"
	CheckCollisionFullMethod           = "/" + ServiceName + "/CheckCollision"
	CheckCoverPositionFullMethod       = "/" + ServiceName + "/CheckCoverPosition"
	GetNearestCoverPositionsFullMethod = "/" + ServiceName + "/GetNearestCoverPositions"
)

// LevelServiceServer is the server API for LevelService.
// Every request and response body is a google.protobuf.Struct.
type LevelServiceServer interface {
	Regenerate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetLayout(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetMeshes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CheckCollision(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CheckCoverPosition(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetNearestCoverPositions(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// LevelServiceDesc describes LevelService for grpc.Server.RegisterService
var LevelServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LevelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Regenerate", Handler: unaryHandler(RegenerateFullMethod, LevelServiceServer.Regenerate)},
		{MethodName: "GetLayout", Handler: unaryHandler(GetLayoutFullMethod, LevelServiceServer.GetLayout)},
		{MethodName: "GetMeshes", Handler: unaryHandler(GetMeshesFullMethod, LevelServiceServer.GetMeshes)},
		{MethodName: "CheckCollision", Handler: unaryHandler(CheckCollisionFullMethod, LevelServiceServer.CheckCollision)},
		{MethodName: "CheckCoverPosition", Handler: unaryHandler(CheckCoverPositionFullMethod, LevelServiceServer.CheckCoverPosition)},
		{MethodName: "GetNearestCoverPositions", Handler: unaryHandler(GetNearestCoverPositionsFullMethod, LevelServiceServer.GetNearestCoverPositions)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "level/v1alpha1/level.proto",
}

// RegisterLevelServiceServer registers the handler with a gRPC server
func RegisterLevelServiceServer(s grpc.ServiceRegistrar, srv LevelServiceServer) {
	s.RegisterService(&LevelServiceDesc, srv)
}

type unaryMethod func(LevelServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(LevelServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(LevelServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// LevelServiceClient is the client API for LevelService
type LevelServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLevelServiceClient creates a client over an existing connection
func NewLevelServiceClient(cc grpc.ClientConnInterface) *LevelServiceClient {
	return &LevelServiceClient{cc: cc}
}

func (c *LevelServiceClient) invoke(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Regenerate rebuilds the level
func (c *LevelServiceClient) Regenerate(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RegenerateFullMethod, req, opts...)
}

// GetLayout fetches the rooms and walls
func (c *LevelServiceClient) GetLayout(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetLayoutFullMethod, req, opts...)
}

// GetMeshes fetches mesh summaries or geometry
func (c *LevelServiceClient) GetMeshes(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetMeshesFullMethod, req, opts...)
}

// CheckCollision runs a wall proximity query
func (c *LevelServiceClient) CheckCollision(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, CheckCollisionFullMethod, req, opts...)
}

// CheckCoverPosition runs a cover query
func (c *LevelServiceClient) CheckCoverPosition(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, CheckCoverPositionFullMethod, req, opts...)
}

// GetNearestCoverPositions runs a cover search
func (c *LevelServiceClient) GetNearestCoverPositions(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetNearestCoverPositionsFullMethod, req, opts...)
}
