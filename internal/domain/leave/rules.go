package leave

import (
	"sort"
	"time"

	"github.com/paydesk/paydesk-backend-go/internal/pkg/validator"
)

const (
	// MinNoticeDays is how far in the future every requested date must be.
	MinNoticeDays = 3
	// MaxConsecutiveDays caps a run of adjacent calendar days per request.
	MaxConsecutiveDays = 3
)

// NormalizeDates parses, normalizes and de-duplicates the requested
// dates, returned sorted ascending.
func NormalizeDates(dateStrs []string) ([]time.Time, error) {
	if len(dateStrs) == 0 {
		return nil, ErrNoLeaveDates
	}

	seen := make(map[time.Time]struct{}, len(dateStrs))
	var dates []time.Time
	for _, s := range dateStrs {
		d, err := validator.ParseDate(s)
		if err != nil {
			return nil, validator.ValidationErrors{{Field: "selected_dates", Message: "contains an invalid date: " + s}}
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// ValidateDates enforces the submission rules against a reference day:
// every date at least MinNoticeDays after today, and no run longer than
// MaxConsecutiveDays. Dates must be sorted, de-duplicated UTC midnights.
func ValidateDates(dates []time.Time, today time.Time) error {
	if len(dates) == 0 {
		return ErrNoLeaveDates
	}

	today = validator.NormalizeDate(today)
	earliest := today.AddDate(0, 0, MinNoticeDays)

	run := 1
	for i, d := range dates {
		if d.Before(earliest) {
			return ErrLeaveDateTooSoon
		}
		if i > 0 {
			if d.Sub(dates[i-1]) == 24*time.Hour {
				run++
				if run > MaxConsecutiveDays {
					return ErrLeaveRunTooLong
				}
			} else {
				run = 1
			}
		}
	}

	return nil
}
