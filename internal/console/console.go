package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lachei-alvin/shoe-app-frontend/internal/core/domain"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/ports"
	"github.com/lachei-alvin/shoe-app-frontend/internal/core/service"
)

// Console is the interactive shell: it owns the page set, parses commands,
// and re-renders the current view after every action. It doubles as the
// Confirmer for destructive admin actions.
type Console struct {
	store  *service.Store
	router *Router
	shop   *ShopPage
	cart   *CartPage
	orders *OrdersPage
	admin  *AdminPage
	auth   *AuthPage

	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
}

// NewConsole wires the pages and the router over shared state.
func NewConsole(store *service.Store, gw ports.Gateway, in io.Reader, out io.Writer, log zerolog.Logger) *Console {
	c := &Console{
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   log,
	}

	validate := NewFormValidator()
	c.shop = NewShopPage(store, gw)
	c.cart = NewCartPage(store, gw)
	c.orders = NewOrdersPage(store, gw)
	c.admin = NewAdminPage(store, gw, c, validate)
	c.auth = NewAuthPage(store, validate)

	c.router = NewRouter(store, map[domain.View]Page{
		domain.ViewShop:   c.shop,
		domain.ViewCart:   c.cart,
		domain.ViewOrders: c.orders,
		domain.ViewAdmin:  c.admin,
		domain.ViewAuth:   c.auth,
	})
	return c
}

// Confirm prompts y/n on the console. Anything but an explicit "y"/"yes"
// declines.
func (c *Console) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", prompt)
	if !c.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(c.in.Text()))
	return answer == "y" || answer == "yes"
}

// Run initialises the store and processes commands until quit or EOF.
func (c *Console) Run(ctx context.Context) error {
	c.store.Initialize(ctx)
	c.render()

	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			return c.in.Err()
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		if quit := c.handle(ctx, line); quit {
			return nil
		}
		c.render()
	}
}

func (c *Console) render() {
	fmt.Fprintln(c.out)
	if n := c.store.Notification(); !n.Empty() {
		fmt.Fprintf(c.out, "[%s] %s\n", n.Kind, n.Text)
	}
	c.renderNavbar()
	c.router.Render(c.out)
}

func (c *Console) renderNavbar() {
	user := c.store.CurrentUser()
	status := "not logged in"
	if user != nil {
		status = user.Username
		if user.IsAdmin {
			status += " (admin)"
		}
	}
	fmt.Fprintf(c.out, "SHOE-APP | view=%s | %s\n", c.store.View(), status)
}

// handle executes one command line. Unknown commands print usage help.
func (c *Console) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", "exit":
		return true

	case "shop":
		c.router.Navigate(ctx, domain.ViewShop)
	case "cart":
		c.router.Navigate(ctx, domain.ViewCart)
	case "orders":
		c.router.Navigate(ctx, domain.ViewOrders)
	case "admin":
		c.router.Navigate(ctx, domain.ViewAdmin)
	case "auth":
		c.router.Navigate(ctx, domain.ViewAuth)

	case "login":
		if len(args) != 2 {
			c.usage("login <username> <password>")
			break
		}
		c.auth.Login(ctx, args[0], args[1])
	case "register":
		if len(args) != 3 {
			c.usage("register <username> <email> <password>")
			break
		}
		c.auth.Register(ctx, args[0], args[1], args[2])
	case "logout":
		c.store.Logout()

	case "filter":
		c.handleFilter(args)
	case "add":
		if id, ok := c.parseID(args, "add <product-id>"); ok {
			c.shop.AddToCart(ctx, id)
		}
	case "checkout":
		c.cart.Checkout(ctx)
	case "refresh":
		c.handleRefresh(ctx)
	case "dismiss":
		c.store.Dismiss()

	case "addcat":
		if len(args) == 0 {
			c.usage("addcat <name>")
			break
		}
		c.admin.AddCategory(ctx, strings.Join(args, " "))
	case "renamecat":
		if len(args) < 2 {
			c.usage("renamecat <id> <name>")
			break
		}
		if id, ok := c.parseID(args[:1], "renamecat <id> <name>"); ok {
			c.admin.UpdateCategory(ctx, id, strings.Join(args[1:], " "))
		}
	case "delcat":
		if id, ok := c.parseID(args, "delcat <id>"); ok {
			c.admin.DeleteCategory(ctx, id, c.categoryName(id))
		}

	case "addprod":
		if input, ok := c.parseProduct(strings.TrimSpace(strings.TrimPrefix(line, "addprod"))); ok {
			c.admin.SaveProduct(ctx, nil, input)
		}
	case "editprod":
		c.handleEditProduct(ctx, line)
	case "delprod":
		if id, ok := c.parseID(args, "delprod <id>"); ok {
			c.admin.DeleteProduct(ctx, id, c.productName(id))
		}

	default:
		fmt.Fprintln(c.out, "commands: shop cart orders admin auth | login register logout |")
		fmt.Fprintln(c.out, "  filter add checkout refresh dismiss |")
		fmt.Fprintln(c.out, "  addcat renamecat delcat addprod editprod delprod | quit")
	}
	return false
}

func (c *Console) handleFilter(args []string) {
	if len(args) != 1 {
		c.usage("filter <category-id|all>")
		return
	}
	if args[0] == "all" {
		c.store.SelectCategory(nil)
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		c.usage("filter <category-id|all>")
		return
	}
	c.store.SelectCategory(&id)
}

// refresh re-fetches whatever the current view shows.
func (c *Console) handleRefresh(ctx context.Context) {
	switch c.store.View() {
	case domain.ViewCart:
		c.cart.Mount(ctx)
	case domain.ViewOrders:
		c.orders.Refresh(ctx)
	case domain.ViewAdmin:
		c.store.RefreshCatalog(ctx)
		c.admin.RefreshOrders(ctx)
	default:
		c.store.RefreshCatalog(ctx)
	}
}

// parseProduct reads "name | price | category-id | image-url | description".
func (c *Console) parseProduct(raw string) (ports.ProductInput, bool) {
	parts := strings.Split(raw, "|")
	if len(parts) != 5 {
		c.usage("addprod <name> | <price> | <category-id> | <image-url> | <description>")
		return ports.ProductInput{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	price, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		c.usage("price must be a number")
		return ports.ProductInput{}, false
	}
	categoryID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		c.usage("category-id must be a number")
		return ports.ProductInput{}, false
	}

	return ports.ProductInput{
		Name:        parts[0],
		Price:       price,
		CategoryID:  categoryID,
		ImageURL:    parts[3],
		Description: parts[4],
	}, true
}

func (c *Console) handleEditProduct(ctx context.Context, line string) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "editprod"))
	idStr, raw, found := strings.Cut(rest, " ")
	if !found {
		c.usage("editprod <id> <name> | <price> | <category-id> | <image-url> | <description>")
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.usage("editprod <id> ...")
		return
	}
	if input, ok := c.parseProduct(raw); ok {
		c.admin.SaveProduct(ctx, &id, input)
	}
}

func (c *Console) parseID(args []string, usage string) (int64, bool) {
	if len(args) != 1 {
		c.usage(usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		c.usage(usage)
		return 0, false
	}
	return id, true
}

func (c *Console) categoryName(id int64) string {
	for _, cat := range c.store.Categories() {
		if cat.ID == id {
			return cat.Name
		}
	}
	return fmt.Sprintf("#%d", id)
}

func (c *Console) productName(id int64) string {
	for _, p := range c.store.Products() {
		if p.ID == id {
			return p.Name
		}
	}
	return fmt.Sprintf("#%d", id)
}

func (c *Console) usage(u string) {
	fmt.Fprintln(c.out, "usage: "+u)
}
