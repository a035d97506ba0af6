package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockharvest/internal/model"
)

// BlockFeeRates returns the fee rate of every stored transaction grouped by block.
func (r *Repository) BlockFeeRates(ctx context.Context) ([]model.BlockFeeRates, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_fee_rates", err, start)
	}()

	const query = `
SELECT
	height,
	tx_count,
	arraySum(tx_fee) AS total_fee,
	arrayMap((fee, weight) -> if(weight = 0, 0., fee / weight), tx_fee, tx_weight) AS fee_rates
FROM harvest_blocks FINAL
ORDER BY height`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query block fee rates: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var result []model.BlockFeeRates
	for rows.Next() {
		var item model.BlockFeeRates
		if err = rows.Scan(&item.Height, &item.TXCount, &item.TotalFee, &item.FeeRates); err != nil {
			return nil, fmt.Errorf("scan block fee rates: %w", err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block fee rates: %w", err)
	}

	return result, nil
}
