package explorer

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockharvest/internal/model"
	"github.com/goodnatureofminers/blockharvest/pkg/safe"
)

type briefBlockDTO struct {
	Hash       string `json:"hash"`
	Height     int64  `json:"height"`
	Time       int64  `json:"time"`
	BlockIndex int64  `json:"block_index"`
}

type rawBlockDTO struct {
	Hash   string     `json:"hash"`
	Height int64      `json:"height"`
	Time   int64      `json:"time"`
	Weight int64      `json:"weight"`
	Tx     []rawTxDTO `json:"tx"`
}

type rawTxDTO struct {
	Hash   string `json:"hash"`
	Weight int64  `json:"weight"`
	Fee    int64  `json:"fee"`
}

type errorDTO struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

func validateHash(hash string) error {
	if len(hash) != chainhash.MaxHashStringSize {
		return fmt.Errorf("hash %q has length %d", hash, len(hash))
	}
	if _, err := chainhash.NewHashFromStr(hash); err != nil {
		return fmt.Errorf("hash %q: %w", hash, err)
	}
	return nil
}

func (d briefBlockDTO) toModel(day time.Time) (model.BriefBlock, error) {
	if err := validateHash(d.Hash); err != nil {
		return model.BriefBlock{}, err
	}
	height, err := safe.Uint64(d.Height)
	if err != nil {
		return model.BriefBlock{}, fmt.Errorf("block %s height: %w", d.Hash, err)
	}
	if d.Time <= 0 {
		return model.BriefBlock{}, fmt.Errorf("block %s has invalid time %d", d.Hash, d.Time)
	}

	return model.BriefBlock{
		Hash:      d.Hash,
		Height:    height,
		Timestamp: time.Unix(d.Time, 0).UTC(),
		Day:       day,
	}, nil
}

func (d rawBlockDTO) toModel() (*model.DetailedBlock, error) {
	if err := validateHash(d.Hash); err != nil {
		return nil, err
	}
	if len(d.Tx) == 0 {
		return nil, errors.New("block has no transactions")
	}
	height, err := safe.Uint64(d.Height)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	weight, err := safe.Uint64(d.Weight)
	if err != nil {
		return nil, fmt.Errorf("weight: %w", err)
	}
	if d.Time <= 0 {
		return nil, fmt.Errorf("invalid time %d", d.Time)
	}

	txs := make([]model.Transaction, 0, len(d.Tx))
	for i, tx := range d.Tx {
		if err := validateHash(tx.Hash); err != nil {
			return nil, fmt.Errorf("tx %d: %w", i, err)
		}
		txWeight, err := safe.Uint64(tx.Weight)
		if err != nil {
			return nil, fmt.Errorf("tx %s weight: %w", tx.Hash, err)
		}
		fee, err := safe.Uint64(tx.Fee)
		if err != nil {
			return nil, fmt.Errorf("tx %s fee: %w", tx.Hash, err)
		}
		txs = append(txs, model.Transaction{
			Hash:        tx.Hash,
			BlockHeight: height,
			Weight:      txWeight,
			Fee:         fee,
		})
	}

	return &model.DetailedBlock{
		Hash:         d.Hash,
		Height:       height,
		Timestamp:    time.Unix(d.Time, 0).UTC(),
		Weight:       weight,
		Transactions: txs,
	}, nil
}
