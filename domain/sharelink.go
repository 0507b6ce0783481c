package domain

import "time"

// ShareLink is the server-side token behind the storefront share
// button. The token carries the product id and an expiry, encrypted so
// links cannot be forged or extended client-side. Not persisted.
type ShareLink struct {
	ProductID uint64    `json:"product_id"`
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
