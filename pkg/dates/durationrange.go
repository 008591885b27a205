package dates

import (
	"fmt"
	"time"
)

// DurationRange is a closed interval over non-negative durations, used to
// express estimates like shipping windows ("2--5 days"). Immutable after
// construction; the accessors are the only way in.
type DurationRange struct {
	min time.Duration
	max time.Duration
}

// NewDurationRange returns the closed interval [min, max].
//
// Preconditions, enforced with panics: both durations are non-negative and
// max >= min. A violation is a caller bug, not a recoverable error.
func NewDurationRange(min, max time.Duration) DurationRange {
	if min < 0 {
		panic(fmt.Sprintf("dates: negative min duration %v", min))
	}
	if max < min {
		panic(fmt.Sprintf("dates: max duration %v below min %v", max, min))
	}
	return DurationRange{min: min, max: max}
}

// ExactDuration returns the singleton interval [d, d].
func ExactDuration(d time.Duration) DurationRange {
	return NewDurationRange(d, d)
}

// DaysRange returns the interval [minDays, maxDays] expressed in whole days.
func DaysRange(minDays, maxDays int) DurationRange {
	day := 24 * time.Hour
	return NewDurationRange(time.Duration(minDays)*day, time.Duration(maxDays)*day)
}

// ExactDays returns the singleton interval of a whole-day count.
func ExactDays(days int) DurationRange {
	return DaysRange(days, days)
}

// Min returns the lower bound.
func (r DurationRange) Min() time.Duration {
	return r.min
}

// Max returns the upper bound.
func (r DurationRange) Max() time.Duration {
	return r.max
}

// String renders the range as whole-day counts: a pluralized single count for
// the singleton case ("1 day", "3 days"), otherwise "min--max days". Sub-day
// precision is not rendered.
func (r DurationRange) String() string {
	if r.min == r.max {
		days := int(r.max.Hours() / 24)
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
	return fmt.Sprintf("%d--%d days", int(r.min.Hours()/24), int(r.max.Hours()/24))
}
