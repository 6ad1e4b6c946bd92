package model

import "time"

// Summary holds the aggregate statistics of one run
type Summary struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"` // 0 when Count is 0
	Count   int     `json:"count"`
}

// RunResult is what a completed pipeline run produced
type RunResult struct {
	RunID       string            `json:"run_id,omitempty"` // set only when the run was stored
	Records     []ProcessedRecord `json:"records"`
	Summary     Summary           `json:"summary"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at"`
}
