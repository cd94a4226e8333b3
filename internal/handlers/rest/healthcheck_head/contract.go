//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import "context"

// Dependency - то, без чего экземпляр не готов принимать запросы (*pgxpool.Pool).
type Dependency interface {
	Ping(ctx context.Context) error
}
