package domain

// OrderStatus is the lifecycle state of an order as reported by the backend.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderCompleted OrderStatus = "Completed"
)

// Order is created server-side at checkout from the current cart contents.
// TotalAmount is authoritative; the client never recomputes it.
type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	Status      OrderStatus `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	OrderDate   string      `json:"order_date"`
}
