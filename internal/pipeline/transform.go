package pipeline

import (
	"fmt"
	"go-data-processor/internal/model"
	"math"
	"time"
)

// Transform multiplies each record's value by multiplier and stamps it with now().
// Order is preserved and the input is not modified. A product that is not a
// finite number is an error.
func Transform(records []model.Record, multiplier float64, now func() time.Time) ([]model.ProcessedRecord, error) {
	if now == nil {
		now = time.Now
	}
	processed := make([]model.ProcessedRecord, 0, len(records))
	for _, rec := range records {
		value := float64(rec.Value) * multiplier
		if math.IsInf(value, 0) || math.IsNaN(value) {
			return nil, fmt.Errorf("record %d: %d × %v is not a finite number", rec.ID, rec.Value, multiplier)
		}
		processed = append(processed, model.ProcessedRecord{
			Record:         rec,
			ProcessedValue: value,
			ProcessedAt:    now().UTC().Truncate(time.Millisecond),
		})
	}
	return processed, nil
}
