package console

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/domain"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/ports"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/service"
)

func newStoreWithUser(t *testing.T, gw ports.Gateway, user *domain.User) *service.Store {
	t.Helper()
	store := service.NewStore(gw, nil, zerolog.Nop())
	if user != nil {
		// Drive the real login path so the store installs the identity the
		// same way production does.
		rec, ok := gw.(*recordingGateway)
		if ok && rec.userFn == nil {
			rec.userFn = func(ports.Credential) (*domain.User, error) { return user, nil }
		}
		store.Login(context.Background(), user.Username, "pw")
		store.Dismiss()
		if ok {
			rec.calls = nil
		}
	}
	return store
}

// ---------------------------------------------------------------------------
// Shop
// ---------------------------------------------------------------------------

func TestShopPage_AddToCart_RequiresIdentity(t *testing.T) {
	gw := &recordingGateway{}
	store := service.NewStore(gw, nil, zerolog.Nop())
	page := NewShopPage(store, gw)

	page.AddToCart(context.Background(), 10)

	if len(gw.calls) != 0 {
		t.Fatalf("no network call may be issued without identity, got %v", gw.calls)
	}
	n := store.Notification()
	if n.Kind != domain.NoticeError || n.Text != "Please log in to add items to your cart." {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestShopPage_AddToCart_Success(t *testing.T) {
	gw := &recordingGateway{
		addFn: func(productID int64, quantity int) (*domain.CartItem, error) {
			if productID != 10 || quantity != 1 {
				t.Fatalf("unexpected args: %d x%d", productID, quantity)
			}
			return &domain.CartItem{ID: 1, ProductID: productID, Quantity: 3}, nil
		},
	}
	store := newStoreWithUser(t, gw, &domain.User{Username: "alice"})
	page := NewShopPage(store, gw)

	page.AddToCart(context.Background(), 10)

	n := store.Notification()
	if n.Kind != domain.NoticeSuccess || n.Text != "Added product 10 to cart! (Current quantity: 3)" {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

// ---------------------------------------------------------------------------
// Cart
// ---------------------------------------------------------------------------

func TestCartPage_Checkout_EmptyCartIsLocal(t *testing.T) {
	gw := &recordingGateway{}
	store := newStoreWithUser(t, gw, &domain.User{Username: "alice"})
	page := NewCartPage(store, gw)
	before := len(gw.calls)

	page.Checkout(context.Background())

	if len(gw.calls) != before {
		t.Fatalf("empty-cart checkout must issue zero calls, got %v", gw.calls[before:])
	}
	n := store.Notification()
	if n.Kind != domain.NoticeInfo || n.Text != "Your cart is empty!" {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestCartPage_Checkout_Success(t *testing.T) {
	gw := &recordingGateway{
		cartFn: func(int64) ([]domain.CartItem, error) {
			return []domain.CartItem{{ID: 1, ProductID: 10, Quantity: 2}}, nil
		},
		orderFn: func() (*domain.Order, error) {
			return &domain.Order{ID: 42, TotalAmount: 179.0}, nil
		},
	}
	store := newStoreWithUser(t, gw, &domain.User{Username: "alice"})
	page := NewCartPage(store, gw)
	page.Mount(context.Background())

	if got := domain.EstimatedSubtotal(page.Items()); got != 20.0 {
		t.Fatalf("placeholder estimate wrong: %.2f", got)
	}

	page.Checkout(context.Background())

	if len(page.Items()) != 0 {
		t.Fatal("displayed cart must clear on success")
	}
	n := store.Notification()
	if n.Text != "Order #42 placed successfully! Total: $179.00." {
		t.Fatalf("total must come from the server, got %q", n.Text)
	}
}

func TestCartPage_MountWithoutIdentityClearsItems(t *testing.T) {
	gw := &recordingGateway{}
	store := service.NewStore(gw, nil, zerolog.Nop())
	page := NewCartPage(store, gw)

	page.Mount(context.Background())

	if len(gw.calls) != 0 {
		t.Fatalf("no fetch without identity, got %v", gw.calls)
	}
	if page.Items() != nil {
		t.Fatal("expected cleared cart")
	}
}

// ---------------------------------------------------------------------------
// Orders
// ---------------------------------------------------------------------------

func TestOrdersPage_FailedRefreshKeepsPreviousList(t *testing.T) {
	orders := []domain.Order{{ID: 1, Status: domain.OrderPending, TotalAmount: 10}}
	fail := false
	gw := &recordingGateway{
		myOrdersFn: func(int64) ([]domain.Order, error) {
			if fail {
				return nil, domain.ErrBackendUnreachable
			}
			return orders, nil
		},
	}
	store := newStoreWithUser(t, gw, &domain.User{Username: "alice"})
	page := NewOrdersPage(store, gw)

	page.Refresh(context.Background())
	if len(page.Orders()) != 1 {
		t.Fatal("initial fetch failed")
	}

	fail = true
	page.Refresh(context.Background())
	if len(page.Orders()) != 1 {
		t.Fatal("failed refresh must leave the previous list in place")
	}
}

// ---------------------------------------------------------------------------
// Admin
// ---------------------------------------------------------------------------

func newAdminFixture(t *testing.T) (*AdminPage, *recordingGateway, *stubConfirmer, *service.Store) {
	t.Helper()
	gw := &recordingGateway{}
	store := newStoreWithUser(t, gw, &domain.User{Username: "admin", IsAdmin: true})
	store.RefreshCatalog(context.Background())
	gw.calls = nil
	confirm := &stubConfirmer{answer: true}
	page := NewAdminPage(store, gw, confirm, NewFormValidator())
	return page, gw, confirm, store
}

func TestAdminPage_DeleteCategory_ConfirmedFlow(t *testing.T) {
	page, gw, confirm, store := newAdminFixture(t)

	page.DeleteCategory(context.Background(), 3, "Running")

	if !strings.Contains(confirm.lastPrompt, "Running") {
		t.Fatalf("prompt must name the category: %q", confirm.lastPrompt)
	}
	want := []string{"delete-category", "categories", "products"}
	if len(gw.calls) != 3 {
		t.Fatalf("expected delete then catalog refetch, got %v", gw.calls)
	}
	if gw.calls[0] != want[0] {
		t.Fatalf("delete must come first, got %v", gw.calls)
	}
	// The two listing fetches run concurrently; order between them is free.
	rest := []string{gw.calls[1], gw.calls[2]}
	if !(contains(rest, "categories") && contains(rest, "products")) {
		t.Fatalf("catalog refetch missing: %v", gw.calls)
	}
	n := store.Notification()
	if n.Kind != domain.NoticeSuccess || !strings.Contains(n.Text, "Running") {
		t.Fatalf("notification must name the category: %+v", n)
	}
}

func TestAdminPage_DeleteCategory_Declined(t *testing.T) {
	page, gw, confirm, store := newAdminFixture(t)
	confirm.answer = false

	page.DeleteCategory(context.Background(), 3, "Running")

	if len(gw.calls) != 0 {
		t.Fatalf("declined delete must issue zero calls, got %v", gw.calls)
	}
	if !store.Notification().Empty() {
		t.Fatalf("declined delete must stay silent, got %+v", store.Notification())
	}
}

func TestAdminPage_SaveProduct_RejectsUnknownCategory(t *testing.T) {
	page, gw, _, store := newAdminFixture(t)

	page.SaveProduct(context.Background(), nil, ports.ProductInput{
		Name:        "Trail Runner",
		Description: "grippy",
		Price:       89.5,
		ImageURL:    "https://example.com/shoe.png",
		CategoryID:  999, // not among the loaded categories
	})

	if len(gw.calls) != 0 {
		t.Fatalf("invalid category must be rejected before the network, got %v", gw.calls)
	}
	n := store.Notification()
	if n.Kind != domain.NoticeError || n.Text != "Error: Please select a valid Category ID." {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestAdminPage_SaveProduct_RejectsInvalidDraft(t *testing.T) {
	page, gw, _, store := newAdminFixture(t)

	page.SaveProduct(context.Background(), nil, ports.ProductInput{
		Name:        "Trail Runner",
		Description: "grippy",
		Price:       -1,
		ImageURL:    "https://example.com/shoe.png",
		CategoryID:  3,
	})

	if len(gw.calls) != 0 {
		t.Fatalf("invalid draft must be rejected before the network, got %v", gw.calls)
	}
	if n := store.Notification(); n.Kind != domain.NoticeError || !strings.Contains(n.Text, "price") {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestAdminPage_SaveProduct_CreateAndUpdate(t *testing.T) {
	page, gw, _, store := newAdminFixture(t)
	input := ports.ProductInput{
		Name:        "Trail Runner",
		Description: "grippy",
		Price:       89.5,
		ImageURL:    "https://example.com/shoe.png",
		CategoryID:  3,
	}

	page.SaveProduct(context.Background(), nil, input)
	if gw.calls[0] != "create-product" {
		t.Fatalf("expected create, got %v", gw.calls)
	}
	if n := store.Notification(); n.Text != "Created product: Trail Runner." {
		t.Fatalf("unexpected notification: %+v", n)
	}

	gw.calls = nil
	id := int64(10)
	page.SaveProduct(context.Background(), &id, input)
	if gw.calls[0] != "update-product" {
		t.Fatalf("expected update, got %v", gw.calls)
	}
	if n := store.Notification(); n.Text != "Updated product: Trail Runner." {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestAdminPage_MutationsRequireAdmin(t *testing.T) {
	gw := &recordingGateway{
		userFn: func(ports.Credential) (*domain.User, error) {
			return &domain.User{Username: "alice", IsAdmin: false}, nil
		},
	}
	store := newStoreWithUser(t, gw, &domain.User{Username: "alice"})
	gw.calls = nil
	page := NewAdminPage(store, gw, &stubConfirmer{answer: true}, NewFormValidator())

	page.Mount(context.Background())
	page.RefreshOrders(context.Background())

	if len(gw.calls) != 0 {
		t.Fatalf("non-admin must not trigger dashboard fetches, got %v", gw.calls)
	}
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

func TestAuthPage_Register_RejectsInvalidEmail(t *testing.T) {
	gw := &recordingGateway{}
	store := service.NewStore(gw, nil, zerolog.Nop())
	page := NewAuthPage(store, NewFormValidator())

	page.Register(context.Background(), "bob", "not-an-email", "secret")

	if len(gw.calls) != 0 {
		t.Fatalf("invalid draft must not reach the network, got %v", gw.calls)
	}
	if n := store.Notification(); n.Kind != domain.NoticeError || !strings.Contains(n.Text, "email") {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func contains(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
