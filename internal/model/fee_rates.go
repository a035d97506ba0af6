package model

// BlockFeeRates holds the per-transaction fee rates of one stored block.
type BlockFeeRates struct {
	Height   uint64
	TXCount  uint32
	TotalFee uint64
	FeeRates []float64
}
