package pipeline

import (
	"go-data-processor/internal/model"
)

// ------------------- Generation -------------------

// names is the fixed, ordered vocabulary used for the first records
var names = []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta", "Iota", "Kappa"}

// Generate produces count records with ids 1..count and value = id*100
func Generate(count int) []model.Record {
	if count < 0 {
		count = 0
	}
	records := make([]model.Record, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, model.Record{
			ID:    i + 1,
			Name:  "Item " + nameFor(i),
			Value: (i + 1) * 100,
		})
	}
	return records
}

// nameFor returns the vocabulary word for index i, or a letter-derived
// name (K, L, ..., Z, AA, AB, ...) once the vocabulary runs out.
func nameFor(i int) string {
	if i < len(names) {
		return names[i]
	}
	return letterName(i)
}

// letterName converts a 0-based index into bijective base-26 letters
func letterName(i int) string {
	var buf []byte
	for n := i + 1; n > 0; n /= 26 {
		n--
		buf = append([]byte{byte('A' + n%26)}, buf...)
	}
	return string(buf)
}
