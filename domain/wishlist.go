package domain

import (
	"time"
)

// CREATE TABLE public.wishlist_lines (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     owner_token UUID NOT NULL,
//     product_id  BIGINT NOT NULL,
//     created_at  TIMESTAMPTZ DEFAULT NOW(),
//     UNIQUE (owner_token, product_id)
// );

// WishlistLine is one saved product on a wish list. The owner is an
// opaque token minted by the wishlist service, never a user account:
// linking tokens to accounts is the storefront's concern.
type WishlistLine struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerToken string    `gorm:"column:owner_token;type:uuid;not null;uniqueIndex:idx_wishlist_owner_product" json:"owner_token"`
	ProductID  uint64    `gorm:"column:product_id;not null;uniqueIndex:idx_wishlist_owner_product" json:"product_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WishlistLine) TableName() string {
	return "wishlist_lines"
}
