package dashboard

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/platform/config"
	"storefront/pkg/domain"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/requestcontext"
)

// fakeBasketSource records the window it was queried with and returns canned
// totals. Small enough that a hand-written fake beats a generated mock.
type fakeBasketSource struct {
	totals BasketTotals
	err    error

	gotShop   domain.Shop
	gotAfter  time.Time
	gotBefore time.Time
	calls     int
}

func (f *fakeBasketSource) AbandonedTotals(_ context.Context, shop domain.Shop, updatedAfter, updatedBefore time.Time) (BasketTotals, error) {
	f.calls++
	f.gotShop = shop
	f.gotAfter = updatedAfter
	f.gotBefore = updatedBefore
	return f.totals, f.err
}

func testContext(shop domain.Shop, now time.Time) context.Context {
	ctx := requestcontext.WithShop(context.Background(), shop)
	ctx = requestcontext.WithTime(ctx, now)
	return requestcontext.WithTimezone(ctx, time.UTC)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestAbandonedCartBlock(t *testing.T) {
	shop := domain.Shop{ID: domain.NewShopID(), Currency: "EUR"}
	now := time.Date(2020, time.March, 7, 12, 0, 0, 0, time.UTC)
	cfg := config.Dashboard{AbandonedWindowDays: 14, AbandonedCutoff: 2 * time.Hour}

	t.Run("builds a block from the aggregated totals", func(t *testing.T) {
		source := &fakeBasketSource{totals: BasketTotals{Count: 7, Sum: domain.NewMoney(149900, "EUR")}}
		module := NewCartModule(source, cfg, quietLogger())

		block, err := module.AbandonedCartBlock(testContext(shop, now))
		require.NoError(t, err)
		require.NotNil(t, block)

		assert.Equal(t, "abandoned_carts_14", block.ID)
		assert.Equal(t, "red", block.Color)
		assert.Equal(t, "fa fa-calculator", block.Icon)
		assert.Equal(t, "Abandoned Cart Value", block.Title)
		assert.Equal(t, domain.NewMoney(149900, "EUR"), block.Value)
		assert.Equal(t, "Based on 7 carts over the last 14 days", block.Subtitle)
	})

	t.Run("window boundaries derive from the injected clock and config", func(t *testing.T) {
		source := &fakeBasketSource{totals: BasketTotals{Count: 1, Sum: domain.NewMoney(100, "EUR")}}
		module := NewCartModule(source, cfg, quietLogger())

		_, err := module.AbandonedCartBlock(testContext(shop, now))
		require.NoError(t, err)

		assert.Equal(t, shop, source.gotShop)
		assert.True(t, source.gotAfter.Equal(now.Add(-14*24*time.Hour)))
		assert.True(t, source.gotBefore.Equal(now.Add(-2*time.Hour)))
	})

	t.Run("honors a configured cutoff", func(t *testing.T) {
		source := &fakeBasketSource{totals: BasketTotals{Count: 1, Sum: domain.NewMoney(100, "EUR")}}
		custom := config.Dashboard{AbandonedWindowDays: 30, AbandonedCutoff: 45 * time.Minute}
		module := NewCartModule(source, custom, quietLogger())

		block, err := module.AbandonedCartBlock(testContext(shop, now))
		require.NoError(t, err)
		require.NotNil(t, block)

		assert.Equal(t, "abandoned_carts_30", block.ID)
		assert.True(t, source.gotAfter.Equal(now.Add(-30*24*time.Hour)))
		assert.True(t, source.gotBefore.Equal(now.Add(-45*time.Minute)))
	})

	t.Run("omits the block when no baskets match", func(t *testing.T) {
		source := &fakeBasketSource{totals: BasketTotals{}}
		module := NewCartModule(source, cfg, quietLogger())

		block, err := module.AbandonedCartBlock(testContext(shop, now))
		require.NoError(t, err)
		assert.Nil(t, block)
		assert.Equal(t, 1, source.calls)
	})

	t.Run("propagates source failures", func(t *testing.T) {
		sourceErr := errors.New("store unavailable")
		source := &fakeBasketSource{err: sourceErr}
		module := NewCartModule(source, cfg, quietLogger())

		block, err := module.AbandonedCartBlock(testContext(shop, now))
		require.Error(t, err)
		assert.ErrorIs(t, err, sourceErr)
		assert.Nil(t, block)
	})

	t.Run("requires a shop in the request context", func(t *testing.T) {
		source := &fakeBasketSource{}
		module := NewCartModule(source, cfg, quietLogger())

		ctx := requestcontext.WithTime(context.Background(), now)
		_, err := module.AbandonedCartBlock(ctx)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Zero(t, source.calls)
	})
}
