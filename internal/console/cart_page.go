package console

import (
	"context"
	"fmt"
	"io"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/domain"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/ports"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/service"
)

// CartPage owns the displayed cart lines and the checkout action. The
// rendered subtotal is a placeholder estimate; the backend computes the real
// total at order creation.
type CartPage struct {
	store *service.Store
	gw    ports.Gateway
	items []domain.CartItem
}

// NewCartPage builds the cart page.
func NewCartPage(store *service.Store, gw ports.Gateway) *CartPage {
	return &CartPage{store: store, gw: gw}
}

// Mount fetches the current user's cart; without an identity the displayed
// list is cleared instead.
func (p *CartPage) Mount(ctx context.Context) {
	user := p.store.CurrentUser()
	if user == nil {
		p.items = nil
		return
	}

	items, err := p.gw.FetchCart(ctx, p.store.Credential(), user.ID)
	if err != nil {
		return
	}
	p.items = items
}

// Items returns the displayed cart lines.
func (p *CartPage) Items() []domain.CartItem {
	return p.items
}

// Checkout creates an order from the cart server-side. An empty cart is
// rejected locally with an info notification and zero network calls. On
// success the displayed list clears and the server-confirmed total is shown.
func (p *CartPage) Checkout(ctx context.Context) {
	if len(p.items) == 0 {
		p.store.Notify(domain.NoticeInfo, "Your cart is empty!")
		return
	}

	order, err := p.gw.CreateOrder(ctx, p.store.Credential())
	if err != nil {
		return
	}

	p.items = nil
	p.store.Notify(domain.NoticeSuccess,
		fmt.Sprintf("Order #%d placed successfully! Total: $%.2f.", order.ID, order.TotalAmount))
}

// Render writes the cart lines and the estimated subtotal.
func (p *CartPage) Render(w io.Writer) {
	if p.store.CurrentUser() == nil {
		fmt.Fprintln(w, "Please log in to view your shopping cart.")
		return
	}

	fmt.Fprintln(w, "== Your Shopping Cart ==")
	fmt.Fprintf(w, "Items (%d)\n", len(p.items))

	if len(p.items) == 0 {
		fmt.Fprintln(w, "Your cart is currently empty. Start shopping!")
		return
	}

	for _, item := range p.items {
		fmt.Fprintf(w, "  product %d  x%d  $%.2f\n", item.ProductID, item.Quantity, domain.EstimatedLineTotal(item))
	}
	fmt.Fprintf(w, "Subtotal (Mock Est.): $%.2f\n", domain.EstimatedSubtotal(p.items))
}
