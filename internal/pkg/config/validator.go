package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ValidateDuration checks min <= duration <= max.
func ValidateDuration(duration, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}
	if duration < min {
		return fmt.Errorf("duration %v is below minimum %v", duration, min)
	}
	if duration > max {
		return fmt.Errorf("duration %v exceeds maximum %v", duration, max)
	}
	return nil
}

// ValidateIntRange checks min <= value <= max.
func ValidateIntRange(value, min, max int) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%d) cannot be greater than max (%d)", min, max)
	}
	if value < min {
		return fmt.Errorf("value %d is below minimum %d", value, min)
	}
	if value > max {
		return fmt.Errorf("value %d exceeds maximum %d", value, max)
	}
	return nil
}

// ValidatePositiveDuration rejects zero and negative durations.
func ValidatePositiveDuration(duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", duration)
	}
	return nil
}

// ValidateRatio checks 0 <= value <= 1.
func ValidateRatio(value float64) error {
	if value < 0 || value > 1 {
		return fmt.Errorf("ratio %v must be between 0 and 1", value)
	}
	return nil
}

// ValidateNonBlank rejects strings that are empty after trimming spaces.
func ValidateNonBlank(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value must not be blank")
	}
	return nil
}

// ValidateFilePath rejects blank paths and paths naming a directory
// (trailing separator, "." or "..").
func ValidateFilePath(path string) error {
	if err := ValidateNonBlank(path); err != nil {
		return fmt.Errorf("file path: %w", err)
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return fmt.Errorf("file path %q must not end with a separator", path)
	}
	switch filepath.Base(filepath.Clean(path)) {
	case ".", "..":
		return fmt.Errorf("file path %q must name a file", path)
	}
	return nil
}
