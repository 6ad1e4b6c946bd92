package model

import "time"

// Record is a single generated input record
type Record struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ProcessedRecord is a Record after the multiplier transform
type ProcessedRecord struct {
	Record
	ProcessedValue float64   `json:"processedValue"`
	ProcessedAt    time.Time `json:"processedAt"`
}
