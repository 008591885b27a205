// Package dashboard computes the admin dashboard blocks for the storefront.
// Blocks are plain values; the admin front end decides how to render them.
package dashboard

import "storefront/pkg/domain"

// Block is a single dashboard money block.
type Block struct {
	// ID is stable across requests so the front end can anchor and sort
	// blocks, for example "abandoned_carts_14".
	ID       string
	Color    string
	Icon     string
	Title    string
	Value    domain.Money
	Subtitle string
}
