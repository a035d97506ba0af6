package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockharvest/internal/model"
	"github.com/goodnatureofminers/blockharvest/pkg/safe"
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
	b.height,
	b.tx_count,
	COALESCE(SUM(t.fee), 0)::BIGINT AS total_fee,
	COALESCE(
		array_agg(CASE WHEN t.weight = 0 THEN 0 ELSE t.fee::FLOAT8 / t.weight END) FILTER (WHERE t.id IS NOT NULL),
		'{}'::FLOAT8[]
	) AS fee_rates
FROM blocks b
LEFT JOIN transactions t ON t.block_id = b.id
GROUP BY b.id
ORDER BY b.height`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query block fee rates: %w", err)
	}
	defer rows.Close()

	var result []model.BlockFeeRates
	for rows.Next() {
		var (
			height   int64
			txCount  int32
			totalFee int64
			rates    []float64
		)
		if err = rows.Scan(&height, &txCount, &totalFee, &rates); err != nil {
			return nil, fmt.Errorf("scan block fee rates: %w", err)
		}

		item := model.BlockFeeRates{FeeRates: rates}
		if item.Height, err = safe.Uint64(height); err != nil {
			return nil, fmt.Errorf("block height: %w", err)
		}
		if item.TXCount, err = safe.Uint32(txCount); err != nil {
			return nil, fmt.Errorf("block tx count: %w", err)
		}
		if item.TotalFee, err = safe.Uint64(totalFee); err != nil {
			return nil, fmt.Errorf("block total fee: %w", err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block fee rates: %w", err)
	}

	return result, nil
}
