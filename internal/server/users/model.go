package users

import "time"

// Cart maps a catalog item id to the quantity held. Absence of a key means
// quantity zero; mutation rules live in the cart service.
type Cart map[int64]int64

// User is a storefront account. Email is unique (case-sensitive, as stored).
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Cart         Cart
	CreatedAt    time.Time
}

// defaultCartSize is the number of item ids pre-populated at signup.
const defaultCartSize = 300

// NewDefaultCart returns the cart written for fresh accounts: explicit zero
// quantities for item ids 1..300, independent of actual catalog size. The
// web client has always relied on the dense map, so it is kept as-is.
func NewDefaultCart() Cart {
	cart := make(Cart, defaultCartSize)
	for i := int64(1); i <= defaultCartSize; i++ {
		cart[i] = 0
	}
	return cart
}
