package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/blockharvest/internal/model"
	"github.com/goodnatureofminers/blockharvest/pkg/safe"
)

// SaveBlockWithTransactions stores the block and its transactions in one database transaction.
// It returns model.ErrHeightConflict when the height is already stored.
func (r *Repository) SaveBlockWithTransactions(ctx context.Context, block model.Block, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_block", err, start)
	}()

	height, err := safe.Int64(block.Height)
	if err != nil {
		return fmt.Errorf("block height: %w", err)
	}
	weight, err := safe.Int64(block.Weight)
	if err != nil {
		return fmt.Errorf("block weight: %w", err)
	}
	txCount, err := safe.Int32(block.TXCount)
	if err != nil {
		return fmt.Errorf("block tx count: %w", err)
	}
	rows, err := transactionRows(txs)
	if err != nil {
		return err
	}

	const insertBlock = `
INSERT INTO blocks (height, hash, timestamp, weight, tx_count)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (height) DO NOTHING
RETURNING id`

	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var blockID int64
		if scanErr := tx.QueryRow(ctx, insertBlock, height, block.Hash, block.Timestamp, weight, txCount).Scan(&blockID); scanErr != nil {
			if errors.Is(scanErr, pgx.ErrNoRows) {
				return fmt.Errorf("save block %d: %w", block.Height, model.ErrHeightConflict)
			}
			return fmt.Errorf("insert block: %w", conflictError(block.Height, scanErr))
		}

		if len(rows) == 0 {
			return nil
		}
		for _, row := range rows {
			row[0] = blockID
		}
		if _, copyErr := tx.CopyFrom(ctx,
			pgx.Identifier{"transactions"},
			[]string{"block_id", "hash", "weight", "fee"},
			pgx.CopyFromRows(rows),
		); copyErr != nil {
			return fmt.Errorf("copy transactions: %w", copyErr)
		}
		return nil
	})
	return err
}

func transactionRows(txs []model.Transaction) ([][]any, error) {
	rows := make([][]any, 0, len(txs))
	for _, tx := range txs {
		weight, err := safe.Int64(tx.Weight)
		if err != nil {
			return nil, fmt.Errorf("tx %s weight: %w", tx.Hash, err)
		}
		fee, err := safe.Int64(tx.Fee)
		if err != nil {
			return nil, fmt.Errorf("tx %s fee: %w", tx.Hash, err)
		}
		rows = append(rows, []any{int64(0), tx.Hash, weight, fee})
	}
	return rows, nil
}
