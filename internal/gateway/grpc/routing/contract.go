//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routing_test
package routing

import (
	"context"

	"google.golang.org/grpc"
)

// invoker - *grpc.ClientConn. Сгенерированного клиента нет: запрос и ответ
// передаются как google.protobuf.Struct.
type invoker interface {
	Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
