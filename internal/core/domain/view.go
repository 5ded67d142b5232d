package domain

// View enumerates the five storefront pages. Transitions happen only through
// explicit store updates; there is no URL routing or back-navigation.
type View string

const (
	ViewShop   View = "SHOP"
	ViewAuth   View = "AUTH"
	ViewOrders View = "USER_ORDERS"
	ViewAdmin  View = "ADMIN_DASHBOARD"
	ViewCart   View = "CART"
)
