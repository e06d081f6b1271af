package service

import (
	"time"

	"github.com/MKhiriev/exercise-tracker/internal/calendar"
	"github.com/MKhiriev/exercise-tracker/internal/validators"
	"github.com/MKhiriev/exercise-tracker/models"
)

// logFilter selects log entries by inclusive calendar day bounds and keeps
// at most limit of them, in log order.
type logFilter struct {
	from *time.Time
	to   *time.Time

	limit    int
	hasLimit bool
}

func newLogFilter(req models.LogRequest) (logFilter, error) {
	var (
		f   logFilter
		err error
	)

	if f.from, err = validators.ParseBound(req.From, validators.ErrInvalidFromDate); err != nil {
		return logFilter{}, err
	}
	if f.to, err = validators.ParseBound(req.To, validators.ErrInvalidToDate); err != nil {
		return logFilter{}, err
	}
	if f.limit, f.hasLimit, err = validators.ParseLimit(req.Limit); err != nil {
		return logFilter{}, err
	}

	return f, nil
}

func (f logFilter) bounded() bool {
	return f.from != nil || f.to != nil
}

// apply never returns nil. Entries whose stored date does not parse are
// dropped when a bound is set.
func (f logFilter) apply(entries []models.Exercise) []models.Exercise {
	out := make([]models.Exercise, 0, len(entries))

	for _, e := range entries {
		if f.hasLimit && len(out) >= f.limit {
			break
		}

		if f.bounded() {
			day, err := calendar.Parse(e.Date)
			if err != nil {
				continue
			}
			if f.from != nil && day.Before(*f.from) {
				continue
			}
			if f.to != nil && day.After(*f.to) {
				continue
			}
		}

		out = append(out, models.Exercise{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		})
	}

	return out
}
