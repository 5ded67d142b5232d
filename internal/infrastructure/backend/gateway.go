package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/domain"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/ports"
)

// Gateway is the typed ports.Gateway implementation over Client and
// SessionFetcher. Public endpoints (catalog, token, registration) go through
// the bare client; identity-scoped calls go through the session fetcher.
type Gateway struct {
	client *Client
	fetch  *SessionFetcher
	log    zerolog.Logger
}

var _ ports.Gateway = (*Gateway)(nil)

// NewGateway builds a Gateway over an existing client and session fetcher.
func NewGateway(client *Client, fetch *SessionFetcher, log zerolog.Logger) *Gateway {
	return &Gateway{client: client, fetch: fetch, log: log}
}

// CheckHealth probes backend liveness.
func (g *Gateway) CheckHealth(ctx context.Context) bool {
	return g.client.CheckHealth(ctx)
}

// FetchCategories returns the category snapshot, or an empty slice when the
// listing degraded or failed. Callers cannot distinguish "no data" from
// "request failed" here; that is the documented contract, not an oversight.
func (g *Gateway) FetchCategories(ctx context.Context) []domain.Category {
	var categories []domain.Category
	g.decodeListing(ctx, "/categories", &categories)
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories
}

// FetchProducts returns the product snapshot with the same degradation
// contract as FetchCategories.
func (g *Gateway) FetchProducts(ctx context.Context) []domain.Product {
	var products []domain.Product
	g.decodeListing(ctx, "/products", &products)
	if products == nil {
		products = []domain.Product{}
	}
	return products
}

func (g *Gateway) decodeListing(ctx context.Context, path string, v any) {
	res := g.client.Do(ctx, Request{Method: http.MethodGet, Path: path})
	if res.Outcome != OutcomeOK {
		return
	}
	if err := json.Unmarshal(res.Data, v); err != nil {
		g.log.Error().Str("path", path).Err(err).Msg("listing payload did not match schema")
	}
}

// CurrentUser resolves the mock session identity via GET /users/me.
func (g *Gateway) CurrentUser(ctx context.Context, cred ports.Credential) (*domain.User, error) {
	res := g.fetch.Do(ctx, cred, Request{Method: http.MethodGet, Path: "/users/me"})
	var user domain.User
	if err := res.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login submits form-encoded credentials to POST /token. A structurally
// successful response may still carry an empty AccessToken; the caller judges
// success by that field alone.
func (g *Gateway) Login(ctx context.Context, username, password string) (*ports.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := g.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/token",
		Body:   strings.NewReader(form.Encode()),
		Header: header,
	})

	var token ports.TokenResponse
	if err := res.Decode(&token); err != nil {
		return nil, err
	}
	return &token, nil
}

// RegisterUser creates an account via POST /users/.
func (g *Gateway) RegisterUser(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	body, err := jsonBody(input)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	res := g.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/users/",
		Body:   body,
		Header: header,
	})

	var user domain.User
	if err := res.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateCategory posts a new category.
func (g *Gateway) CreateCategory(ctx context.Context, cred ports.Credential, input ports.CategoryInput) (*domain.Category, error) {
	return g.writeCategory(ctx, cred, http.MethodPost, "/categories/", input)
}

// UpdateCategory renames an existing category.
func (g *Gateway) UpdateCategory(ctx context.Context, cred ports.Credential, id int64, input ports.CategoryInput) (*domain.Category, error) {
	return g.writeCategory(ctx, cred, http.MethodPut, fmt.Sprintf("/categories/%d", id), input)
}

func (g *Gateway) writeCategory(ctx context.Context, cred ports.Credential, method, path string, input ports.CategoryInput) (*domain.Category, error) {
	body, err := jsonBody(input)
	if err != nil {
		return nil, err
	}
	res := g.fetch.Do(ctx, cred, Request{Method: method, Path: path, Body: body})
	var category domain.Category
	if err := res.Decode(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category by id.
func (g *Gateway) DeleteCategory(ctx context.Context, cred ports.Credential, id int64) error {
	res := g.fetch.Do(ctx, cred, Request{Method: http.MethodDelete, Path: fmt.Sprintf("/categories/%d", id)})
	if res.Outcome != OutcomeOK {
		return res.Err
	}
	return nil
}

// CreateProduct posts a new product.
func (g *Gateway) CreateProduct(ctx context.Context, cred ports.Credential, input ports.ProductInput) (*domain.Product, error) {
	return g.writeProduct(ctx, cred, http.MethodPost, "/products/", input)
}

// UpdateProduct replaces an existing product's fields.
func (g *Gateway) UpdateProduct(ctx context.Context, cred ports.Credential, id int64, input ports.ProductInput) (*domain.Product, error) {
	return g.writeProduct(ctx, cred, http.MethodPut, fmt.Sprintf("/products/%d", id), input)
}

func (g *Gateway) writeProduct(ctx context.Context, cred ports.Credential, method, path string, input ports.ProductInput) (*domain.Product, error) {
	body, err := jsonBody(input)
	if err != nil {
		return nil, err
	}
	res := g.fetch.Do(ctx, cred, Request{Method: method, Path: path, Body: body})
	var product domain.Product
	if err := res.Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product by id.
func (g *Gateway) DeleteProduct(ctx context.Context, cred ports.Credential, id int64) error {
	res := g.fetch.Do(ctx, cred, Request{Method: http.MethodDelete, Path: fmt.Sprintf("/products/%d", id)})
	if res.Outcome != OutcomeOK {
		return res.Err
	}
	return nil
}

// FetchCart loads the user's cart lines.
func (g *Gateway) FetchCart(ctx context.Context, cred ports.Credential, userID int64) ([]domain.CartItem, error) {
	res := g.fetch.Do(ctx, cred, Request{Method: http.MethodGet, Path: fmt.Sprintf("/cart/%d", userID)})
	var items []domain.CartItem
	if err := res.Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart appends a product to the current user's cart.
func (g *Gateway) AddToCart(ctx context.Context, cred ports.Credential, productID int64, quantity int) (*domain.CartItem, error) {
	body, err := jsonBody(map[string]any{
		"product_id": productID,
		"quantity":   quantity,
	})
	if err != nil {
		return nil, err
	}
	res := g.fetch.Do(ctx, cred, Request{Method: http.MethodPost, Path: "/cart/add", Body: body})
	var item domain.CartItem
	if err := res.Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateOrder checks out the current cart. No body: the backend derives the
// order, including the authoritative total, from the cart server-side.
func (g *Gateway) CreateOrder(ctx context.Context, cred ports.Credential) (*domain.Order, error) {
	res := g.fetch.Do(ctx, cred, Request{Method: http.MethodPost, Path: "/orders/create"})
	var order domain.Order
	if err := res.Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FetchAllOrders lists every order (admin view).
func (g *Gateway) FetchAllOrders(ctx context.Context, cred ports.Credential) ([]domain.Order, error) {
	return g.fetchOrders(ctx, cred, "/orders")
}

// FetchUserOrders lists orders belonging to one user.
func (g *Gateway) FetchUserOrders(ctx context.Context, cred ports.Credential, userID int64) ([]domain.Order, error) {
	return g.fetchOrders(ctx, cred, fmt.Sprintf("/orders/user/%d", userID))
}

func (g *Gateway) fetchOrders(ctx context.Context, cred ports.Credential, path string) ([]domain.Order, error) {
	res := g.fetch.Do(ctx, cred, Request{Method: http.MethodGet, Path: path})
	var orders []domain.Order
	if err := res.Decode(&orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func jsonBody(v any) (*bytes.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
