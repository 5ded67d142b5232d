package domain

// Category is a product grouping mirrored from the backend.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog entry mirrored from the backend. The client never
// validates these fields beyond shape; the backend owns them.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	CategoryID  int64   `json:"category_id"`
}

// FilterByCategory returns the products whose category id strictly equals
// selected. A nil selection means no filter; the input order is preserved
// either way.
func FilterByCategory(products []Product, selected *int64) []Product {
	if selected == nil {
		return products
	}
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID == *selected {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
