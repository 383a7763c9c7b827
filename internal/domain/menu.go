package domain

// MenuItem is read-only reference data; rows are seeded outside the
// application and only active items are served.
type MenuItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	IsVeg       bool   `json:"is_veg"`
	IsActive    bool   `json:"is_active"`
}
