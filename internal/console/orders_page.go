package console

import (
	"context"
	"fmt"
	"io"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/domain"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/ports"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/service"
)

// OrdersPage is the read-only "my orders" history with a manual refresh.
type OrdersPage struct {
	store  *service.Store
	gw     ports.Gateway
	orders []domain.Order
}

// NewOrdersPage builds the order-history page.
func NewOrdersPage(store *service.Store, gw ports.Gateway) *OrdersPage {
	return &OrdersPage{store: store, gw: gw}
}

// Mount fetches the current user's orders.
func (p *OrdersPage) Mount(ctx context.Context) {
	p.Refresh(ctx)
}

// Refresh re-fetches the order history. A failed fetch leaves the previous
// list in place.
func (p *OrdersPage) Refresh(ctx context.Context) {
	user := p.store.CurrentUser()
	if user == nil {
		p.orders = nil
		return
	}

	orders, err := p.gw.FetchUserOrders(ctx, p.store.Credential(), user.ID)
	if err != nil {
		return
	}
	p.orders = orders
}

// Orders returns the displayed history.
func (p *OrdersPage) Orders() []domain.Order {
	return p.orders
}

// Render writes the order history.
func (p *OrdersPage) Render(w io.Writer) {
	user := p.store.CurrentUser()
	if user == nil {
		fmt.Fprintln(w, "Please log in to view your orders.")
		return
	}

	fmt.Fprintln(w, "== My Orders ==")
	fmt.Fprintf(w, "Order history for %s\n", user.Username)

	if len(p.orders) == 0 {
		fmt.Fprintln(w, "You haven't placed any orders yet.")
		return
	}
	for _, o := range p.orders {
		fmt.Fprintf(w, "  Order #%d  [%s]  $%.2f  placed %s\n", o.ID, o.Status, o.TotalAmount, o.OrderDate)
	}
}
