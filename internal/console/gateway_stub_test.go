package console

import (
	"context"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/domain"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/ports"
)

// recordingGateway implements ports.Gateway and records every call in order.
// Individual behaviors are overridable through the function fields.
type recordingGateway struct {
	calls []string

	userFn     func(cred ports.Credential) (*domain.User, error)
	loginFn    func(username, password string) (*ports.TokenResponse, error)
	cartFn     func(userID int64) ([]domain.CartItem, error)
	addFn      func(productID int64, quantity int) (*domain.CartItem, error)
	orderFn    func() (*domain.Order, error)
	myOrdersFn func(userID int64) ([]domain.Order, error)
}

func (g *recordingGateway) record(call string) {
	g.calls = append(g.calls, call)
}

func (g *recordingGateway) CheckHealth(context.Context) bool {
	g.record("health")
	return true
}

func (g *recordingGateway) FetchCategories(context.Context) []domain.Category {
	g.record("categories")
	return []domain.Category{{ID: 3, Name: "Running"}}
}

func (g *recordingGateway) FetchProducts(context.Context) []domain.Product {
	g.record("products")
	return []domain.Product{{ID: 10, Name: "Trail Runner", Price: 89.5, CategoryID: 3}}
}

func (g *recordingGateway) CurrentUser(_ context.Context, cred ports.Credential) (*domain.User, error) {
	g.record("users/me")
	if g.userFn != nil {
		return g.userFn(cred)
	}
	return &domain.User{ID: 7, Username: "admin", IsAdmin: true}, nil
}

func (g *recordingGateway) Login(_ context.Context, username, password string) (*ports.TokenResponse, error) {
	g.record("token")
	if g.loginFn != nil {
		return g.loginFn(username, password)
	}
	return &ports.TokenResponse{AccessToken: "x"}, nil
}

func (g *recordingGateway) RegisterUser(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	g.record("register")
	return &domain.User{Username: input.Username}, nil
}

func (g *recordingGateway) CreateCategory(_ context.Context, _ ports.Credential, input ports.CategoryInput) (*domain.Category, error) {
	g.record("create-category")
	return &domain.Category{ID: 99, Name: input.Name}, nil
}

func (g *recordingGateway) UpdateCategory(_ context.Context, _ ports.Credential, id int64, input ports.CategoryInput) (*domain.Category, error) {
	g.record("update-category")
	return &domain.Category{ID: id, Name: input.Name}, nil
}

func (g *recordingGateway) DeleteCategory(_ context.Context, _ ports.Credential, id int64) error {
	g.record("delete-category")
	return nil
}

func (g *recordingGateway) CreateProduct(_ context.Context, _ ports.Credential, input ports.ProductInput) (*domain.Product, error) {
	g.record("create-product")
	return &domain.Product{ID: 100, Name: input.Name}, nil
}

func (g *recordingGateway) UpdateProduct(_ context.Context, _ ports.Credential, id int64, input ports.ProductInput) (*domain.Product, error) {
	g.record("update-product")
	return &domain.Product{ID: id, Name: input.Name}, nil
}

func (g *recordingGateway) DeleteProduct(_ context.Context, _ ports.Credential, id int64) error {
	g.record("delete-product")
	return nil
}

func (g *recordingGateway) FetchCart(_ context.Context, _ ports.Credential, userID int64) ([]domain.CartItem, error) {
	g.record("cart")
	if g.cartFn != nil {
		return g.cartFn(userID)
	}
	return []domain.CartItem{}, nil
}

func (g *recordingGateway) AddToCart(_ context.Context, _ ports.Credential, productID int64, quantity int) (*domain.CartItem, error) {
	g.record("cart/add")
	if g.addFn != nil {
		return g.addFn(productID, quantity)
	}
	return &domain.CartItem{ID: 1, ProductID: productID, Quantity: quantity}, nil
}

func (g *recordingGateway) CreateOrder(context.Context, ports.Credential) (*domain.Order, error) {
	g.record("orders/create")
	if g.orderFn != nil {
		return g.orderFn()
	}
	return &domain.Order{ID: 55, TotalAmount: 120.0, Status: domain.OrderPending}, nil
}

func (g *recordingGateway) FetchAllOrders(context.Context, ports.Credential) ([]domain.Order, error) {
	g.record("orders")
	return []domain.Order{}, nil
}

func (g *recordingGateway) FetchUserOrders(_ context.Context, _ ports.Credential, userID int64) ([]domain.Order, error) {
	g.record("orders/user")
	if g.myOrdersFn != nil {
		return g.myOrdersFn(userID)
	}
	return []domain.Order{}, nil
}

// stubConfirmer answers every prompt the same way and remembers the last one.
type stubConfirmer struct {
	answer     bool
	lastPrompt string
}

func (s *stubConfirmer) Confirm(prompt string) bool {
	s.lastPrompt = prompt
	return s.answer
}
