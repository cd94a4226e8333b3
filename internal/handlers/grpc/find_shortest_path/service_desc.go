package find_shortest_path

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName = "pathfinder.GraphTraversalService"
	methodName  = "FindShortestPath"
)

type graphTraversalServer interface {
	FindShortestPath(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc описан вручную: .proto нет, сообщения - structpb.Struct.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*graphTraversalServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: methodName,
			Handler:    findShortestPathHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pathfinder",
}

func Register(s grpc.ServiceRegistrar, h *Handler) {
	s.RegisterService(&ServiceDesc, h)
}

func findShortestPathHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(graphTraversalServer).FindShortestPath(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/" + methodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(graphTraversalServer).FindShortestPath(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
