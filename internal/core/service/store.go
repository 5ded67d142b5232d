// Package service holds the application state store: the single owned
// container for view, identity, catalog snapshots, and the transient
// notification. All state transitions go through explicit operations here;
// there are no ambient singletons.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/domain"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/ports"
	"github.com/lachei-alvin/shoe-app-frontend/internal/metrics"
)

// Fixed notification texts surfaced by the lifecycle operations.
const (
	noticeAPIDown      = "API connection failed. Please ensure the backend is running."
	noticeProbeFailed  = "Initial user fetch failed. Check backend logs for /users/me or mock user creation errors."
	noticeLoginFailed  = "Login failed due to network error, or the backend /token endpoint failed."
	noticeSignupFailed = "Registration failed due to a network or unexpected API error. Check the logs for details."
	noticeLoggedOut    = "Logged out successfully."
)

// Store is the application state store. It holds at most one authenticated
// identity at a time; catalog collections are fully replaced snapshots on
// every refetch, never patched incrementally.
type Store struct {
	mu  sync.Mutex
	gw  ports.Gateway
	log zerolog.Logger

	// busyFn reports whether the session fetcher has calls outstanding.
	// May be nil in tests.
	busyFn func() bool

	view               domain.View
	currentUser        *domain.User
	credential         ports.Credential
	products           []domain.Product
	categories         []domain.Category
	selectedCategoryID *int64
	notification       domain.Notification
	apiHealthy         bool
	loading            bool
}

// NewStore builds a store in its mount state: Shop view, healthy until the
// first probe says otherwise, mock credential, empty snapshots.
func NewStore(gw ports.Gateway, busyFn func() bool, log zerolog.Logger) *Store {
	return &Store{
		gw:         gw,
		busyFn:     busyFn,
		log:        log,
		view:       domain.ViewShop,
		credential: ports.MockCredential,
		apiHealthy: true,
		products:   []domain.Product{},
		categories: []domain.Category{},
	}
}

// Initialize runs once at startup. An unreachable backend short-circuits:
// the health flag drops, a fixed error notification is set, and no further
// fetch is attempted. Otherwise categories and products load concurrently
// (partial failure tolerated) and the mock session is resolved best-effort.
func (s *Store) Initialize(ctx context.Context) {
	if !s.gw.CheckHealth(ctx) {
		s.mu.Lock()
		s.apiHealthy = false
		s.mu.Unlock()
		s.Notify(domain.NoticeError, noticeAPIDown)
		s.log.Error().Msg("backend health probe failed, skipping startup fetches")
		return
	}

	s.mu.Lock()
	s.apiHealthy = true
	s.mu.Unlock()

	s.RefreshCatalog(ctx)

	if user := s.resolveSession(ctx); user == nil {
		s.Notify(domain.NoticeError, noticeProbeFailed)
	}
}

// RefreshCatalog re-runs the categories+products fetch pair concurrently and
// replaces both snapshots. Each listing independently degrades to empty on
// failure, so one side failing never blocks the other.
func (s *Store) RefreshCatalog(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	var (
		wg         sync.WaitGroup
		categories []domain.Category
		products   []domain.Product
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		categories = s.gw.FetchCategories(ctx)
	}()
	go func() {
		defer wg.Done()
		products = s.gw.FetchProducts(ctx)
	}()
	wg.Wait()

	s.mu.Lock()
	s.categories = categories
	s.products = products
	s.mu.Unlock()

	s.log.Debug().Int("categories", len(categories)).Int("products", len(products)).
		Msg("catalog snapshot replaced")
}

// resolveSession probes /users/me and installs the identity when present.
func (s *Store) resolveSession(ctx context.Context) *domain.User {
	user, err := s.gw.CurrentUser(ctx, s.Credential())
	if err != nil {
		s.log.Warn().Err(err).Msg("session probe yielded no user")
		s.mu.Lock()
		s.currentUser = nil
		s.mu.Unlock()
		return nil
	}
	s.mu.Lock()
	s.currentUser = user
	s.mu.Unlock()
	return user
}

// Login exchanges credentials at /token. Any failed exchange surfaces the
// network-error notification. A structurally successful response without an
// access token is silently ignored. With a token present the session identity
// is re-resolved and the view switches to Shop.
func (s *Store) Login(ctx context.Context, username, password string) {
	s.setLoading(true)
	defer s.setLoading(false)

	token, err := s.gw.Login(ctx, username, password)
	if err != nil {
		s.Notify(domain.NoticeError, noticeLoginFailed)
		return
	}
	if token.AccessToken == "" {
		return
	}

	s.mu.Lock()
	s.credential = ports.Credential(token.AccessToken)
	s.mu.Unlock()

	user := s.resolveSession(ctx)
	if user == nil {
		return
	}

	s.Notify(domain.NoticeSuccess, fmt.Sprintf("Welcome, %s! (Mock Login)", user.Username))
	s.SetView(domain.ViewShop)
}

// Register creates an account via POST /users/ and steers the user back to
// the auth view to log in.
func (s *Store) Register(ctx context.Context, input ports.RegisterInput) {
	s.setLoading(true)
	defer s.setLoading(false)

	user, err := s.gw.RegisterUser(ctx, input)
	if err != nil {
		s.Notify(domain.NoticeError, noticeSignupFailed)
		return
	}

	s.Notify(domain.NoticeSuccess, fmt.Sprintf("User %s registered successfully! Please log in.", user.Username))
	s.SetView(domain.ViewAuth)
}

// Logout is purely local: clear identity and credential, set an info
// notification, return to Shop. No request is issued.
func (s *Store) Logout() {
	s.mu.Lock()
	s.currentUser = nil
	s.credential = ports.MockCredential
	s.mu.Unlock()

	s.Notify(domain.NoticeInfo, noticeLoggedOut)
	s.SetView(domain.ViewShop)
}

// SelectCategory sets the shop filter. nil clears it.
func (s *Store) SelectCategory(id *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategoryID = id
}

// SelectedCategory returns the current filter, nil when unfiltered.
func (s *Store) SelectedCategory() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCategoryID
}

// FilteredProducts applies the selected-category filter to the product
// snapshot, preserving order.
func (s *Store) FilteredProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.FilterByCategory(s.products, s.selectedCategoryID)
}

// Products returns the full product snapshot.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products
}

// Categories returns the category snapshot.
func (s *Store) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories
}

// HasCategory reports whether id is among the loaded categories. Used by the
// admin product form for its client-side precondition.
func (s *Store) HasCategory(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// CurrentUser returns the authenticated identity, nil when logged out.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}

// Credential returns the mock token passed to session calls.
func (s *Store) Credential() ports.Credential {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential
}

// View returns the current view tag.
func (s *Store) View() domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SetView switches the current view. Transitions only ever happen through
// explicit calls like this one; there is no history stack.
func (s *Store) SetView(v domain.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
}

// Healthy reports the result of the startup liveness probe.
func (s *Store) Healthy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiHealthy
}

// Loading reports whether any operation or session call is underway.
func (s *Store) Loading() bool {
	s.mu.Lock()
	local := s.loading
	s.mu.Unlock()
	if local {
		return true
	}
	return s.busyFn != nil && s.busyFn()
}

// Notify replaces the live notification. At most one exists at a time.
func (s *Store) Notify(kind domain.NotificationKind, text string) {
	s.mu.Lock()
	s.notification = domain.Notification{Text: text, Kind: kind}
	s.mu.Unlock()
	metrics.NotificationsTotal.WithLabelValues(string(kind)).Inc()
	s.log.Info().Str("kind", string(kind)).Str("text", text).Msg("notification")
}

// Notification returns the live notification, possibly empty.
func (s *Store) Notification() domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notification
}

// Dismiss clears the live notification.
func (s *Store) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notification = domain.Notification{}
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}
