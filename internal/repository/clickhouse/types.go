//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=driver_mocks_test.go -package=$GOPACKAGE github.com/ClickHouse/clickhouse-go/v2/lib/driver Batch,Row,Rows
package clickhouse

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

type (
	// Metrics records repository operation outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Conn is the subset of the ClickHouse connection used by Repository.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		QueryRow(ctx context.Context, query string, args ...any) driver.Row
		PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error)
		Ping(ctx context.Context) error
		Close() error
	}
)
