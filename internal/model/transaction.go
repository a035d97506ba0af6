package model

// Transaction is a transaction summary with its weight and fee in satoshis.
type Transaction struct {
	Hash        string
	BlockHeight uint64
	Weight      uint64
	Fee         uint64
}

// FeeRate returns the fee paid per weight unit.
func (t Transaction) FeeRate() float64 {
	if t.Weight == 0 {
		return 0
	}
	return float64(t.Fee) / float64(t.Weight)
}
