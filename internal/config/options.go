package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format selects how processed records are rendered
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Default flag values
const (
	DefaultMultiplier = "2"
	DefaultCount      = "3"
	DefaultFormat     = string(FormatTable)
)

// MaxCount bounds --count so generated values and totals stay finite
const MaxCount = 1_000_000

// Options holds the raw flag text before it is resolved
type Options struct {
	Multiplier string
	Count      string
	Format     string
}

// Configuration is the resolved, validated set of options for one pipeline run
type Configuration struct {
	Multiplier float64 `json:"multiplier"`
	Count      int     `json:"count"`
	Format     Format  `json:"format"`
}

// DefaultOptions returns the options used when no flags are given
func DefaultOptions() Options {
	return Options{
		Multiplier: DefaultMultiplier,
		Count:      DefaultCount,
		Format:     DefaultFormat,
	}
}

// Resolve parses raw options into a Configuration.
// Any unparseable or out-of-range value yields a *ConfigurationError naming the flag.
func Resolve(opts Options) (Configuration, error) {
	multiplier, err := parseMultiplier(opts.Multiplier)
	if err != nil {
		return Configuration{}, err
	}

	count, err := parseCount(opts.Count)
	if err != nil {
		return Configuration{}, err
	}

	format, err := ParseFormat(opts.Format)
	if err != nil {
		return Configuration{}, err
	}

	// largest possible total: multiplier * 100 * (1 + 2 + ... + count)
	if total := multiplier * 50 * float64(count) * float64(count+1); math.IsInf(total, 0) {
		return Configuration{}, &ConfigurationError{
			Flag:   "multiplier",
			Value:  opts.Multiplier,
			Reason: fmt.Sprintf("too large for --count %d, processed values would overflow", count),
		}
	}

	return Configuration{
		Multiplier: multiplier,
		Count:      count,
		Format:     format,
	}, nil
}

// ParseFormat parses a format name, ignoring case and surrounding whitespace
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON:
		return f, nil
	default:
		return "", &ConfigurationError{
			Flag:   "format",
			Value:  s,
			Reason: fmt.Sprintf("must be %q or %q", FormatJSON, FormatTable),
		}
	}
}

func parseMultiplier(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ConfigurationError{Flag: "multiplier", Value: s, Reason: "not a number", Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ConfigurationError{Flag: "multiplier", Value: s, Reason: "must be a finite number"}
	}
	if v <= 0 {
		return 0, &ConfigurationError{Flag: "multiplier", Value: s, Reason: "must be greater than 0"}
	}
	return v, nil
}

func parseCount(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ConfigurationError{Flag: "count", Value: s, Reason: "not an integer", Err: err}
	}
	if v < 0 {
		return 0, &ConfigurationError{Flag: "count", Value: s, Reason: "must not be negative"}
	}
	if v > MaxCount {
		return 0, &ConfigurationError{Flag: "count", Value: s, Reason: fmt.Sprintf("must be at most %d", MaxCount)}
	}
	return v, nil
}
