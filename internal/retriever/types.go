package retriever

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockharvest/internal/model"
	"github.com/goodnatureofminers/blockharvest/internal/progress"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Explorer interface {
		DayBlocks(ctx context.Context, day time.Time) ([]model.BriefBlock, error)
		Block(ctx context.Context, hash string) (*model.DetailedBlock, error)
	}
	Repository interface {
		ExistsByHeight(ctx context.Context, height uint64) (bool, error)
		ExistsInTimeRange(ctx context.Context, from, to time.Time) (bool, error)
		SaveBlockWithTransactions(ctx context.Context, block model.Block, txs []model.Transaction) error
	}
	Counters interface {
		Increase(day time.Time, delta int64) progress.Levels
		Decrease(day time.Time, delta int64) progress.Levels
		Snapshot() progress.Snapshot
	}
	Metrics interface {
		ObserveListing(err error, blocks int, started time.Time)
		ObserveSkippedDay()
		ObserveBlock(outcome string, started time.Time)
		ObserveBackpressure(tier string)
		SetPending(total int64)
	}
)
