package models

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

// WishlistItem links a user to a saved product.
type WishlistItem struct {
	ID      int64   `json:"id"`
	Product Product `json:"product"`
}
