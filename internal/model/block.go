// Package model defines domain models for block harvesting.
package model

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockharvest/pkg/safe"
)

// Block represents a block row persisted to storage.
type Block struct {
	Height    uint64
	Hash      string
	Timestamp time.Time
	Weight    uint64
	TXCount   uint32
}

// BriefBlock is a block reference returned by a day listing.
// Day is the day boundary the listing was requested for.
type BriefBlock struct {
	Hash      string
	Height    uint64
	Timestamp time.Time
	Day       time.Time
}

// DetailedBlock is a fully fetched block. Transactions[0] is the coinbase transaction.
type DetailedBlock struct {
	Hash         string
	Height       uint64
	Timestamp    time.Time
	Weight       uint64
	Transactions []Transaction
}

// NonCoinbase returns the block transactions without the leading coinbase transaction.
func (b DetailedBlock) NonCoinbase() []Transaction {
	if len(b.Transactions) <= 1 {
		return nil
	}
	return b.Transactions[1:]
}

// Persistable splits the detailed block into the row and transactions that are stored.
func (b DetailedBlock) Persistable() (Block, []Transaction, error) {
	txs := b.NonCoinbase()
	txCount, err := safe.Uint32(len(txs))
	if err != nil {
		return Block{}, nil, fmt.Errorf("block %d tx count: %w", b.Height, err)
	}
	stored := make([]Transaction, len(txs))
	for i, tx := range txs {
		tx.BlockHeight = b.Height
		stored[i] = tx
	}

	return Block{
		Height:    b.Height,
		Hash:      b.Hash,
		Timestamp: b.Timestamp,
		Weight:    b.Weight,
		TXCount:   txCount,
	}, stored, nil
}
