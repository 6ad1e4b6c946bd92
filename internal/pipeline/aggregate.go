package pipeline

import (
	"go-data-processor/internal/model"
)

// Summarize computes total and average of the processed values.
// Average is 0 for an empty sequence.
func Summarize(processed []model.ProcessedRecord) model.Summary {
	summary := model.Summary{Count: len(processed)}
	for _, rec := range processed {
		summary.Total += rec.ProcessedValue
	}
	if summary.Count > 0 {
		summary.Average = summary.Total / float64(summary.Count)
	}
	return summary
}
