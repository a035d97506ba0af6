package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockharvest/internal/model"
)

// SaveBlockWithTransactions stores the block and its transactions in one row.
// It returns model.ErrHeightConflict when the height is already stored.
func (r *Repository) SaveBlockWithTransactions(ctx context.Context, block model.Block, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_block", err, start)
	}()

	const existsQuery = `
SELECT count()
FROM harvest_blocks
WHERE height = ?`

	var count uint64
	if err = r.conn.QueryRow(ctx, existsQuery, block.Height).Scan(&count); err != nil {
		return fmt.Errorf("check block height: %w", err)
	}
	if count > 0 {
		err = fmt.Errorf("save block %d: %w", block.Height, model.ErrHeightConflict)
		return err
	}

	const query = `
INSERT INTO harvest_blocks (
	height,
	hash,
	timestamp,
	weight,
	tx_count,
	tx_hash,
	tx_weight,
	tx_fee
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare block batch: %w", err)
	}
	defer func() {
		if !batch.IsSent() {
			_ = batch.Abort()
		}
	}()

	hashes := make([]string, len(txs))
	weights := make([]uint64, len(txs))
	fees := make([]uint64, len(txs))
	for i, tx := range txs {
		hashes[i] = tx.Hash
		weights[i] = tx.Weight
		fees[i] = tx.Fee
	}

	if err = batch.Append(
		block.Height,
		block.Hash,
		block.Timestamp.UTC(),
		block.Weight,
		block.TXCount,
		hashes,
		weights,
		fees,
	); err != nil {
		return fmt.Errorf("append block: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}
