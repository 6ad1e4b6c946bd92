package pipeline

import (
	"fmt"
	"go-data-processor/internal/config"
	"go-data-processor/internal/model"
	"go-data-processor/pkg/utils"
	"io"

	"github.com/goccy/go-json"
)

// Render writes the processed records to w in the requested format
func Render(w io.Writer, format config.Format, multiplier float64, processed []model.ProcessedRecord) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, processed)
	case config.FormatTable:
		return renderTable(w, multiplier, processed)
	default:
		return fmt.Errorf("unsupported format: %q", format)
	}
}

// renderJSON writes the sequence as an indented JSON array
func renderJSON(w io.Writer, processed []model.ProcessedRecord) error {
	if processed == nil {
		processed = []model.ProcessedRecord{}
	}
	data, err := json.MarshalIndent(processed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// renderTable writes one line per record: "  - <name>: <value> × <multiplier> = <processedValue>"
func renderTable(w io.Writer, multiplier float64, processed []model.ProcessedRecord) error {
	m := utils.FormatNumber(multiplier)
	for _, rec := range processed {
		if _, err := fmt.Fprintf(w, "  - %s: %d × %s = %s\n", rec.Name, rec.Value, m, utils.FormatNumber(rec.ProcessedValue)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rec.ID, err)
		}
	}
	return nil
}
