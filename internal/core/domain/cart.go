package domain

// placeholderUnitPrice is the fixed per-item price used for the client-side
// subtotal estimate. The backend computes the authoritative order total at
// checkout time from real product prices.
const placeholderUnitPrice = 10.0

// CartItem is a single line in a user's cart, mirrored from the backend.
type CartItem struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// EstimatedSubtotal computes the display-only subtotal for a cart using the
// fixed placeholder unit price. It is an estimate and must never be conflated
// with Order.TotalAmount.
func EstimatedSubtotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * placeholderUnitPrice
	}
	return total
}

// EstimatedLineTotal returns the placeholder display price for one cart line.
func EstimatedLineTotal(item CartItem) float64 {
	return float64(item.Quantity) * placeholderUnitPrice
}
