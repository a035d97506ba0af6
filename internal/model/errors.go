package model

import "errors"

// ErrHeightConflict is returned by storage when a block with the same height is already stored.
var ErrHeightConflict = errors.New("block height already stored")
