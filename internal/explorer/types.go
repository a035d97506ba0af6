//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
package explorer

import "time"

type (
	// Metrics records explorer call outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveRetry(operation string)
	}
)
