package workflow

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseSize converts a human-readable size like "10MB" or "512KB" into
// bytes. A bare number is bytes; units are binary multiples and
// case-insensitive.
func ParseSize(value string) (int64, error) {
	v := strings.TrimSpace(strings.ToUpper(value))
	if v == "" {
		return 0, errors.New("empty size")
	}

	unit := int64(1)
	switch {
	case strings.HasSuffix(v, "GB"):
		unit, v = 1<<30, strings.TrimSuffix(v, "GB")
	case strings.HasSuffix(v, "MB"):
		unit, v = 1<<20, strings.TrimSuffix(v, "MB")
	case strings.HasSuffix(v, "KB"):
		unit, v = 1<<10, strings.TrimSuffix(v, "KB")
	case strings.HasSuffix(v, "B"):
		v = strings.TrimSuffix(v, "B")
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid size %q", value)
	}
	return int64(n * float64(unit)), nil
}
