package config

import (
	"fmt"
)

// minReadBufferSize mirrors the smallest buffer bufio will allocate.
const minReadBufferSize = 16

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Search validation
	if c.Search.HiddenPrefix == "" {
		errs = append(errs, "search.hidden_prefix must not be empty")
	}
	switch c.Search.BinaryDetection {
	case BinaryDetectionNone, BinaryDetectionQuit:
	default:
		errs = append(errs, fmt.Sprintf("search.binary_detection must be %q or %q", BinaryDetectionNone, BinaryDetectionQuit))
	}
	if c.Search.BinarySampleSize < 1 {
		errs = append(errs, "search.binary_sample_size must be >= 1")
	}
	if c.Search.ReadBufferSize < minReadBufferSize {
		errs = append(errs, fmt.Sprintf("search.read_buffer_size must be >= %d", minReadBufferSize))
	}
	if c.Search.MaxLineBytes < 0 {
		errs = append(errs, "search.max_line_bytes must be >= 0")
	}
	for _, pattern := range c.Search.Include {
		if pattern == "" {
			errs = append(errs, "search.include must not contain empty patterns")
			break
		}
	}
	for _, pattern := range c.Search.Exclude {
		if pattern == "" {
			errs = append(errs, "search.exclude must not contain empty patterns")
			break
		}
	}

	// UI validation
	if c.UI.MaxResults < 1 {
		errs = append(errs, "ui.max_results must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
