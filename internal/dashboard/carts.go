package dashboard

import (
	"context"
	"fmt"
	"log"
	"time"

	"storefront/internal/platform/config"
	"storefront/pkg/dates"
	"storefront/pkg/domain"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/requestcontext"
)

// BasketTotals is the aggregate a basket store reports for a shop and window.
type BasketTotals struct {
	Count int
	Sum   domain.Money
}

// BasketSource aggregates persisted baskets for a shop whose last update
// falls inside [updatedAfter, updatedBefore). The storage layer behind it is
// an external collaborator; this package only consumes the aggregate.
type BasketSource interface {
	AbandonedTotals(ctx context.Context, shop domain.Shop, updatedAfter, updatedBefore time.Time) (BasketTotals, error)
}

// CartModule produces the cart-related dashboard blocks.
type CartModule struct {
	source BasketSource
	cfg    config.Dashboard
	log    *log.Logger
}

// NewCartModule wires a cart module from its collaborators.
func NewCartModule(source BasketSource, cfg config.Dashboard, logger *log.Logger) *CartModule {
	return &CartModule{source: source, cfg: cfg, log: logger}
}

// AbandonedCartBlock reports the value sitting in abandoned carts: baskets
// last touched between the window start (now minus the configured number of
// days) and the abandoned cutoff (now minus the configured idle duration).
//
// When no baskets match, the block is omitted from the dashboard entirely,
// so the return is (nil, nil) rather than an empty block.
func (m *CartModule) AbandonedCartBlock(ctx context.Context) (*Block, error) {
	shop := requestcontext.Shop(ctx)
	if shop.ID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "no shop in request context")
	}

	now := dates.LocalNow(ctx)
	windowStart := now.Add(-time.Duration(m.cfg.AbandonedWindowDays) * 24 * time.Hour)
	cutoff := now.Add(-m.cfg.AbandonedCutoff)

	totals, err := m.source.AbandonedTotals(ctx, shop, windowStart, cutoff)
	if err != nil {
		m.log.Printf("dashboard: abandoned cart totals for shop %s: %v", shop.ID, err)
		return nil, fmt.Errorf("aggregating abandoned carts: %w", err)
	}
	if totals.Count == 0 {
		return nil, nil
	}

	return &Block{
		ID:       fmt.Sprintf("abandoned_carts_%d", m.cfg.AbandonedWindowDays),
		Color:    "red",
		Icon:     "fa fa-calculator",
		Title:    "Abandoned Cart Value",
		Value:    totals.Sum,
		Subtitle: fmt.Sprintf("Based on %d carts over the last %d days", totals.Count, m.cfg.AbandonedWindowDays),
	}, nil
}
