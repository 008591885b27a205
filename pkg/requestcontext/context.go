// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// This package defines context keys and getter/setter functions for values
// that are typically set by middleware but consumed by services and
// libraries. By keeping this package free of net/http dependencies, consumers
// can import only what they need without pulling in HTTP-related code.
//
// Usage in services (read values):
//
//	now := requestcontext.Now(ctx)
//	tz := requestcontext.Timezone(ctx)
//	shop := requestcontext.Shop(ctx)
//
// Usage in middleware (set values):
//
//	ctx = requestcontext.WithTime(ctx, now)
//	ctx = requestcontext.WithShop(ctx, shop)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithTimezone(ctx, time.UTC)
package requestcontext

import (
	"context"
	"time"

	"golang.org/x/text/language"

	"storefront/pkg/domain"
)

// Context key types (unexported for encapsulation).
type (
	requestTimeKey struct{}
	timezoneKey    struct{}
	localeKey      struct{}
	shopKey        struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyRequestTime = requestTimeKey{}
	ContextKeyTimezone    = timezoneKey{}
	ContextKeyLocale      = localeKey{}
	ContextKeyShop        = shopKey{}
)

// -----------------------------------------------------------------------------
// Request time
// -----------------------------------------------------------------------------

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() for non-request contexts (workers, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
// Useful for:
//   - Unit tests that need a deterministic clock
//   - Workers that need consistent time within a batch operation
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}

// -----------------------------------------------------------------------------
// Timezone
// -----------------------------------------------------------------------------

// Timezone retrieves the current timezone from context.
// Falls back to the process-local timezone when none is set.
func Timezone(ctx context.Context) *time.Location {
	if loc, ok := ctx.Value(ContextKeyTimezone).(*time.Location); ok && loc != nil {
		return loc
	}
	return time.Local
}

// WithTimezone injects a timezone into a context.
func WithTimezone(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, ContextKeyTimezone, loc)
}

// -----------------------------------------------------------------------------
// Locale
// -----------------------------------------------------------------------------

// Locale retrieves the request locale from context.
// Returns language.Und when none is set.
func Locale(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(ContextKeyLocale).(language.Tag); ok {
		return tag
	}
	return language.Und
}

// WithLocale injects a locale into a context.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, ContextKeyLocale, tag)
}

// -----------------------------------------------------------------------------
// Shop
// -----------------------------------------------------------------------------

// Shop retrieves the shop the request is scoped to.
// Returns the zero value when not set; callers check Shop.ID.IsNil().
func Shop(ctx context.Context) domain.Shop {
	if shop, ok := ctx.Value(ContextKeyShop).(domain.Shop); ok {
		return shop
	}
	return domain.Shop{}
}

// WithShop injects a shop into the context.
func WithShop(ctx context.Context, shop domain.Shop) context.Context {
	return context.WithValue(ctx, ContextKeyShop, shop)
}
