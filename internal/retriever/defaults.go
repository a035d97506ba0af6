package retriever

import "time"

const (
	defaultListWorkers   = 2
	defaultListQueue     = 2
	defaultDetailWorkers = 16
	defaultDetailQueue   = 64

	// A day is considered covered when storage holds a block in
	// [day-guardWindowStart, day-guardWindowEnd).
	guardWindowStart = 12 * time.Hour
	guardWindowEnd   = 11 * time.Hour

	tierList   = "list"
	tierDetail = "detail"
)
