// Package ports declares the interfaces the application core depends on.
// Implementations live under internal/infrastructure.
package ports

import (
	"context"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/domain"
)

// Credential is the mock session token carried around for interface symmetry.
// The backend contract for this client is unauthenticated, so implementations
// accept it but do not forward it.
type Credential string

// MockCredential is the placeholder token used before a real login response
// has been seen.
const MockCredential Credential = "MOCK_TOKEN"

// TokenResponse is the payload of POST /token. Login success is judged purely
// by the presence of AccessToken.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// RegisterInput is the JSON body for POST /users/.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// ProductInput is the JSON body for product create/update.
type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"image_url" validate:"required,url"`
	CategoryID  int64   `json:"category_id" validate:"required"`
}

// CategoryInput is the JSON body for category create/update.
type CategoryInput struct {
	Name string `json:"name" validate:"required"`
}

// Gateway is the typed surface over the storefront backend. Listing methods
// degrade to an empty slice on any failure (non-JSON success or transport
// error); every other method returns a zero value plus the failure, and
// callers treat the value as absent.
type Gateway interface {
	// CheckHealth probes GET /; any successful response means healthy.
	CheckHealth(ctx context.Context) bool

	// Catalog listings. Never nil, never an error: absence and failure both
	// collapse to an empty snapshot by contract.
	FetchCategories(ctx context.Context) []domain.Category
	FetchProducts(ctx context.Context) []domain.Product

	// Session and account.
	CurrentUser(ctx context.Context, cred Credential) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*TokenResponse, error)
	RegisterUser(ctx context.Context, input RegisterInput) (*domain.User, error)

	// Admin CRUD.
	CreateCategory(ctx context.Context, cred Credential, input CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, cred Credential, id int64, input CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, cred Credential, id int64) error
	CreateProduct(ctx context.Context, cred Credential, input ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, cred Credential, id int64, input ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, cred Credential, id int64) error

	// Cart and orders.
	FetchCart(ctx context.Context, cred Credential, userID int64) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, cred Credential, productID int64, quantity int) (*domain.CartItem, error)
	CreateOrder(ctx context.Context, cred Credential) (*domain.Order, error)
	FetchAllOrders(ctx context.Context, cred Credential) ([]domain.Order, error)
	FetchUserOrders(ctx context.Context, cred Credential, userID int64) ([]domain.Order, error)
}
