package console

import (
	"context"
	"fmt"
	"io"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/domain"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/service"
)

// Page is one of the five storefront views. Mount runs on navigation so a
// page can fetch its page-local state; Render writes the current state.
type Page interface {
	Mount(ctx context.Context)
	Render(w io.Writer)
}

// Router maps the view tag in the store to a page. One override applies: when
// the startup health probe failed, every tag renders a fixed connection-error
// panel instead.
type Router struct {
	store *service.Store
	pages map[domain.View]Page
}

// NewRouter builds a router over the given page set.
func NewRouter(store *service.Store, pages map[domain.View]Page) *Router {
	return &Router{store: store, pages: pages}
}

// Navigate switches the store to view and mounts the target page.
func (r *Router) Navigate(ctx context.Context, view domain.View) {
	r.store.SetView(view)
	if page, ok := r.pages[view]; ok {
		page.Mount(ctx)
	}
}

// Render writes the page for the current view tag. Unknown tags fall back to
// the shop.
func (r *Router) Render(w io.Writer) {
	if !r.store.Healthy() {
		fmt.Fprintln(w, "!! Backend Connection Failed !!")
		fmt.Fprintln(w, "The application cannot connect to the API server.")
		fmt.Fprintln(w, "Action required: please ensure the backend server is running.")
		return
	}

	page, ok := r.pages[r.store.View()]
	if !ok {
		page = r.pages[domain.ViewShop]
	}
	page.Render(w)
}
