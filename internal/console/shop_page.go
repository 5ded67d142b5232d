package console

import (
	"context"
	"fmt"
	"io"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/domain"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/ports"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/service"
)

// ShopPage shows the catalog with the category filter and drives add-to-cart.
type ShopPage struct {
	store *service.Store
	gw    ports.Gateway
}

// NewShopPage builds the shop page over shared state.
func NewShopPage(store *service.Store, gw ports.Gateway) *ShopPage {
	return &ShopPage{store: store, gw: gw}
}

// Mount is a no-op: the shop renders straight from the store snapshots.
func (p *ShopPage) Mount(context.Context) {}

// AddToCart puts one unit of the product into the current user's cart.
// Without an identity this is rejected locally with an error notification and
// no request is issued.
func (p *ShopPage) AddToCart(ctx context.Context, productID int64) {
	if p.store.CurrentUser() == nil {
		p.store.Notify(domain.NoticeError, "Please log in to add items to your cart.")
		return
	}

	item, err := p.gw.AddToCart(ctx, p.store.Credential(), productID, 1)
	if err != nil {
		return
	}

	p.store.Notify(domain.NoticeSuccess,
		fmt.Sprintf("Added product %d to cart! (Current quantity: %d)", productID, item.Quantity))
}

// Render writes the filter bar and the filtered product grid.
func (p *ShopPage) Render(w io.Writer) {
	fmt.Fprintln(w, "== Our Latest Collection ==")

	selected := p.store.SelectedCategory()
	fmt.Fprintf(w, "Filter by: %s All (%d)\n", marker(selected == nil), len(p.store.Products()))
	for _, c := range p.store.Categories() {
		fmt.Fprintf(w, "           %s [%d] %s\n", marker(selected != nil && *selected == c.ID), c.ID, c.Name)
	}

	products := p.store.FilteredProducts()
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found in this selection.")
		return
	}
	for _, prod := range products {
		fmt.Fprintf(w, "  [%d] %s — $%.2f (category %d)\n", prod.ID, prod.Name, prod.Price, prod.CategoryID)
		if prod.Description != "" {
			fmt.Fprintf(w, "      %s\n", prod.Description)
		}
	}
}

func marker(active bool) string {
	if active {
		return "*"
	}
	return " "
}
