package validators

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/exercise-tracker/internal/calendar"
)

// ParseDuration converts a submitted duration into a non-negative integer.
func ParseDuration(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidDuration
	}

	d, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}
	return d, nil
}

// ParseBound parses an optional log query bound. A nil time means the bound
// is absent. Parse failures are reported as sentinel.
func ParseBound(raw string, sentinel error) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	t, err := calendar.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", sentinel, raw)
	}
	return &t, nil
}

// ParseLimit parses an optional non-negative limit. ok is false when the
// limit is absent.
func ParseLimit(raw string) (limit int, ok bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
	}
	return n, true, nil
}
