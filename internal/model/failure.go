package model

import "time"

// FailureRecord is a serialisable description of a day or block that could not be harvested.
type FailureRecord struct {
	Stage      string    `json:"stage"`
	Day        time.Time `json:"day"`
	Hash       string    `json:"hash,omitempty"`
	Height     uint64    `json:"height,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
	Message    string    `json:"message"`
}
