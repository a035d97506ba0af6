//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
package postgres

import "time"

type (
	// Metrics records repository operation outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
