package console

import (
	"context"
	"fmt"
	"io"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/domain"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/ports"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/service"
)

// AuthPage hosts the login and register forms.
type AuthPage struct {
	store    *service.Store
	validate *FormValidator
}

// NewAuthPage builds the auth page.
func NewAuthPage(store *service.Store, validate *FormValidator) *AuthPage {
	return &AuthPage{store: store, validate: validate}
}

// Mount is a no-op; the forms are stateless.
func (p *AuthPage) Mount(context.Context) {}

// Login submits the login form.
func (p *AuthPage) Login(ctx context.Context, username, password string) {
	if username == "" || password == "" {
		p.store.Notify(domain.NoticeError, "Error: username and password are required.")
		return
	}
	p.store.Login(ctx, username, password)
}

// Register validates the draft locally, then submits it. Validation failures
// never reach the network.
func (p *AuthPage) Register(ctx context.Context, username, email, password string) {
	input := ports.RegisterInput{Username: username, Email: email, Password: password}
	if err := p.validate.Validate(input); err != nil {
		p.store.Notify(domain.NoticeError, "Error: "+err.Error())
		return
	}
	p.store.Register(ctx, input)
}

// Render writes the form hints.
func (p *AuthPage) Render(w io.Writer) {
	fmt.Fprintln(w, "== Access Account ==")
	fmt.Fprintln(w, "Register:  register <username> <email> <password>")
	fmt.Fprintln(w, "Log in:    login <username> <password>")
}
