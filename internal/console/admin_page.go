package console

import (
	"context"
	"fmt"
	"io"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/domain"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/ports"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/service"
)

// Confirmer asks the user to approve a destructive action. The console
// implementation reads y/n from the terminal; tests stub it.
type Confirmer interface {
	Confirm(prompt string) bool
}

// AdminPage hosts the category and product managers plus the all-orders
// listing. Every mutation is followed by a catalog refresh and a
// notification; deletes require explicit confirmation.
type AdminPage struct {
	store    *service.Store
	gw       ports.Gateway
	confirm  Confirmer
	validate *FormValidator

	allOrders []domain.Order
}

// NewAdminPage builds the admin console page.
func NewAdminPage(store *service.Store, gw ports.Gateway, confirm Confirmer, validate *FormValidator) *AdminPage {
	return &AdminPage{store: store, gw: gw, confirm: confirm, validate: validate}
}

func (p *AdminPage) isAdmin() bool {
	user := p.store.CurrentUser()
	return user != nil && user.IsAdmin
}

// Mount re-fetches the catalog and the all-orders listing so the dashboard
// never shows a stale snapshot from before backend seeding finished.
func (p *AdminPage) Mount(ctx context.Context) {
	if !p.isAdmin() {
		return
	}
	p.store.RefreshCatalog(ctx)
	p.RefreshOrders(ctx)
}

// RefreshOrders re-fetches every customer order.
func (p *AdminPage) RefreshOrders(ctx context.Context) {
	if !p.isAdmin() {
		return
	}
	orders, err := p.gw.FetchAllOrders(ctx, p.store.Credential())
	if err != nil {
		return
	}
	p.allOrders = orders
}

// AllOrders returns the displayed all-orders listing.
func (p *AdminPage) AllOrders() []domain.Order {
	return p.allOrders
}

// AddCategory creates a category and refreshes the catalog.
func (p *AdminPage) AddCategory(ctx context.Context, name string) {
	input := ports.CategoryInput{Name: name}
	if err := p.validate.Validate(input); err != nil {
		p.store.Notify(domain.NoticeError, "Error: "+err.Error())
		return
	}

	category, err := p.gw.CreateCategory(ctx, p.store.Credential(), input)
	if err != nil {
		return
	}

	p.store.RefreshCatalog(ctx)
	p.store.Notify(domain.NoticeSuccess, fmt.Sprintf("Category '%s' added successfully.", category.Name))
}

// UpdateCategory renames a category and refreshes the catalog.
func (p *AdminPage) UpdateCategory(ctx context.Context, id int64, name string) {
	input := ports.CategoryInput{Name: name}
	if err := p.validate.Validate(input); err != nil {
		p.store.Notify(domain.NoticeError, "Error: "+err.Error())
		return
	}

	category, err := p.gw.UpdateCategory(ctx, p.store.Credential(), id, input)
	if err != nil {
		return
	}

	p.store.RefreshCatalog(ctx)
	p.store.Notify(domain.NoticeSuccess, fmt.Sprintf("Category ID %d updated to '%s'.", category.ID, category.Name))
}

// DeleteCategory removes a category after explicit confirmation.
func (p *AdminPage) DeleteCategory(ctx context.Context, id int64, name string) {
	prompt := fmt.Sprintf("Are you sure you want to delete category %q? This action cannot be undone.", name)
	if !p.confirm.Confirm(prompt) {
		return
	}

	if err := p.gw.DeleteCategory(ctx, p.store.Credential(), id); err != nil {
		return
	}

	p.store.RefreshCatalog(ctx)
	p.store.Notify(domain.NoticeSuccess, fmt.Sprintf("Category %s deleted successfully.", name))
}

// SaveProduct creates (id nil) or updates (id set) a product. The chosen
// category must be among the currently loaded categories; otherwise the
// submission is rejected client-side before any request.
func (p *AdminPage) SaveProduct(ctx context.Context, id *int64, input ports.ProductInput) {
	if !p.store.HasCategory(input.CategoryID) {
		p.store.Notify(domain.NoticeError, "Error: Please select a valid Category ID.")
		return
	}
	if err := p.validate.Validate(input); err != nil {
		p.store.Notify(domain.NoticeError, "Error: "+err.Error())
		return
	}

	var (
		product *domain.Product
		err     error
		verb    = "Created"
	)
	if id == nil {
		product, err = p.gw.CreateProduct(ctx, p.store.Credential(), input)
	} else {
		verb = "Updated"
		product, err = p.gw.UpdateProduct(ctx, p.store.Credential(), *id, input)
	}
	if err != nil {
		return
	}

	p.store.RefreshCatalog(ctx)
	p.store.Notify(domain.NoticeSuccess, fmt.Sprintf("%s product: %s.", verb, product.Name))
}

// DeleteProduct removes a product after explicit confirmation.
func (p *AdminPage) DeleteProduct(ctx context.Context, id int64, name string) {
	prompt := fmt.Sprintf("Are you sure you want to delete product %q? This action cannot be undone.", name)
	if !p.confirm.Confirm(prompt) {
		return
	}

	if err := p.gw.DeleteProduct(ctx, p.store.Credential(), id); err != nil {
		return
	}

	p.store.RefreshCatalog(ctx)
	p.store.Notify(domain.NoticeSuccess, fmt.Sprintf("Product %s deleted successfully.", name))
}

// Render writes the dashboard: both managers and the all-orders listing.
func (p *AdminPage) Render(w io.Writer) {
	if !p.isAdmin() {
		fmt.Fprintln(w, "Access Denied: Administrator privileges required.")
		return
	}

	fmt.Fprintln(w, "== Admin Dashboard ==")

	fmt.Fprintln(w, "-- Category Management --")
	categories := p.store.Categories()
	if len(categories) == 0 {
		fmt.Fprintln(w, "No categories found. Add one with 'addcat <name>'.")
	}
	for _, c := range categories {
		fmt.Fprintf(w, "  [%d] %s\n", c.ID, c.Name)
	}

	fmt.Fprintln(w, "-- Product Management --")
	products := p.store.Products()
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
	}
	for _, prod := range products {
		fmt.Fprintf(w, "  [%d] %s — $%.2f (category %d)\n", prod.ID, prod.Name, prod.Price, prod.CategoryID)
	}

	fmt.Fprintln(w, "-- All Customer Orders --")
	if len(p.allOrders) == 0 {
		fmt.Fprintln(w, "No orders found in the database.")
	}
	for _, o := range p.allOrders {
		fmt.Fprintf(w, "  Order #%d  user %d  [%s]  $%.2f\n", o.ID, o.UserID, o.Status, o.TotalAmount)
	}
}
