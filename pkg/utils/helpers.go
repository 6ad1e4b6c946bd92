package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseDuration safely parses a duration string like "500ms", returning fallback on error
func ParseDuration(d string, fallback time.Duration) time.Duration {
	d = strings.TrimSpace(d)
	if d == "" {
		return fallback
	}
	duration, err := time.ParseDuration(d)
	if err != nil || duration < 0 {
		return fallback
	}
	return duration
}

// FormatNumber renders a float with the fewest digits that round-trip,
// so 200 prints as "200" and 1.5 as "1.5". Magnitudes from 1e21 up switch
// to exponent form ("1e+307").
func FormatNumber(v float64) string {
	if math.Abs(v) >= 1e21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFixed2 renders a float with exactly two decimals
func FormatFixed2(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}

// Round2 rounds half away from zero to two decimals.
// Values of 1e15 and above carry no fractional digits and are returned as is.
func Round2(v float64) float64 {
	if math.Abs(v) >= 1e15 || math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}
