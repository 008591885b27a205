package dates

import (
	"context"
	"fmt"
	"time"

	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/requestcontext"
)

// ToAware converts a Date or time.Time into a timezone-aware datetime.
//
// A time.Time already carries a location and passes through unchanged, so
// ToAware is idempotent on its own output. A Date is combined with the
// supplied time-of-day (pass Midnight for the default) in the context
// timezone without shifting the wall clock.
//
// Any other input type is a caller bug, not a recoverable condition, and
// panics.
func ToAware(ctx context.Context, value any, at TimeOfDay) time.Time {
	switch v := value.(type) {
	case time.Time:
		return v
	case Date:
		return v.At(at, requestcontext.Timezone(ctx))
	}
	panic(fmt.Sprintf("dates: ToAware requires a Date or time.Time, got %T (%v)", value, value))
}

// LocalNow returns the current instant in the context timezone. The clock
// comes from the context as well, so tests inject a fixed time with
// requestcontext.WithTime. Routed through ToAware so the always-aware
// invariant has a single implementation.
func LocalNow(ctx context.Context) time.Time {
	return ToAware(ctx, requestcontext.Now(ctx), Midnight).In(requestcontext.Timezone(ctx))
}

// ToDatetimeRange converts a pair of range endpoints to aware datetimes.
//
// Both endpoints must be Dates, or both time.Times; mixing granularities
// fails with CodeTypeMismatch rather than silently comparing a day against
// an instant. When both are Dates the range is calendar-inclusive: one day is
// added to the end date before conversion so the result covers the entire end
// day. Datetime endpoints are taken as exact boundaries and pass through
// untouched.
func ToDatetimeRange(ctx context.Context, start, end any) (time.Time, time.Time, error) {
	for _, v := range []any{start, end} {
		switch v.(type) {
		case Date, time.Time:
		default:
			return time.Time{}, time.Time{}, dErrors.Newf(dErrors.CodeTypeMismatch,
				"not a date or datetime: %v", v).WithValue(v)
		}
	}

	_, startIsDate := start.(Date)
	endDate, endIsDate := end.(Date)
	if startIsDate != endIsDate {
		return time.Time{}, time.Time{}, dErrors.Newf(dErrors.CodeTypeMismatch,
			"start and end must be the same kind: %v - %v", start, end)
	}

	if endIsDate {
		end = endDate.AddDays(1)
	}
	return ToAware(ctx, start, Midnight), ToAware(ctx, end, Midnight), nil
}
