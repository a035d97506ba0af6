package retriever

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockharvest/internal/model"
)

type memoryRepository struct {
	mu     sync.Mutex
	blocks map[uint64]model.Block
	txs    map[uint64][]model.Transaction
}

func newMemoryRepository(existing ...model.Block) *memoryRepository {
	r := &memoryRepository{
		blocks: make(map[uint64]model.Block),
		txs:    make(map[uint64][]model.Transaction),
	}
	for _, b := range existing {
		r.blocks[b.Height] = b
	}
	return r
}

func (r *memoryRepository) ExistsByHeight(_ context.Context, height uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.blocks[height]
	return ok, nil
}

func (r *memoryRepository) ExistsInTimeRange(_ context.Context, from, to time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.blocks {
		if !b.Timestamp.Before(from) && b.Timestamp.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) SaveBlockWithTransactions(_ context.Context, block model.Block, txs []model.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blocks[block.Height]; ok {
		return fmt.Errorf("height %d: %w", block.Height, model.ErrHeightConflict)
	}
	r.blocks[block.Height] = block
	r.txs[block.Height] = txs
	return nil
}

func (r *memoryRepository) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.blocks)
}

func (r *memoryRepository) transactions(height uint64) []model.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.txs[height]
}

// scriptedExplorer serves listings per day and details per hash, counting calls.
type scriptedExplorer struct {
	mu          sync.Mutex
	listings    map[int64][]model.BriefBlock
	listErrs    map[int64]error
	details     map[string]*model.DetailedBlock
	detailErrs  map[string]error
	listCalls   int
	detailCalls int
	// onList, when set, runs before every listing is served.
	onList func(day time.Time)
}

func newScriptedExplorer() *scriptedExplorer {
	return &scriptedExplorer{
		listings:   make(map[int64][]model.BriefBlock),
		listErrs:   make(map[int64]error),
		details:    make(map[string]*model.DetailedBlock),
		detailErrs: make(map[string]error),
	}
}

// addDay registers n blocks for day, each with a coinbase and two fee paying transactions.
// The oldest block falls inside the overlap window of day, so a stored day is skipped on the next run.
func (e *scriptedExplorer) addDay(day time.Time, firstHeight uint64, n int) []model.BriefBlock {
	e.mu.Lock()
	defer e.mu.Unlock()

	var blocks []model.BriefBlock
	for i := 0; i < n; i++ {
		height := firstHeight + uint64(n-1-i)
		hash := fmt.Sprintf("%064x", height)
		ts := day.Add(-11*time.Hour - 30*time.Minute + time.Duration(height-firstHeight)*time.Hour)
		blocks = append(blocks, model.BriefBlock{Hash: hash, Height: height, Timestamp: ts, Day: day})
		e.details[hash] = &model.DetailedBlock{
			Hash:      hash,
			Height:    height,
			Timestamp: ts,
			Weight:    4_000_000,
			Transactions: []model.Transaction{
				{Hash: "coinbase-" + hash, Weight: 800},
				{Hash: "a-" + hash, Weight: 400, Fee: 1000},
				{Hash: "b-" + hash, Weight: 600, Fee: 3000},
			},
		}
	}
	e.listings[day.Unix()] = blocks
	return blocks
}

func (e *scriptedExplorer) DayBlocks(ctx context.Context, day time.Time) ([]model.BriefBlock, error) {
	if e.onList != nil {
		e.onList(day)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.listCalls++
	if err := e.listErrs[day.Unix()]; err != nil {
		return nil, err
	}
	return append([]model.BriefBlock(nil), e.listings[day.Unix()]...), nil
}

func (e *scriptedExplorer) Block(ctx context.Context, hash string) (*model.DetailedBlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.detailCalls++
	if err := e.detailErrs[hash]; err != nil {
		return nil, err
	}
	block, ok := e.details[hash]
	if !ok {
		return nil, fmt.Errorf("unknown block %s", hash)
	}
	copied := *block
	copied.Transactions = append([]model.Transaction(nil), block.Transactions...)
	return &copied, nil
}

func (e *scriptedExplorer) calls() (int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.listCalls, e.detailCalls
}

type nopMetrics struct{}

func (nopMetrics) ObserveListing(error, int, time.Time) {}
func (nopMetrics) ObserveSkippedDay()                   {}
func (nopMetrics) ObserveBlock(string, time.Time)       {}
func (nopMetrics) ObserveBackpressure(string)           {}
func (nopMetrics) SetPending(int64)                     {}
