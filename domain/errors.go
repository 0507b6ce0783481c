package domain

import "errors"

// Sentinel errors shared across repositories, services and handlers.
// Repositories translate gorm.ErrRecordNotFound into these so callers
// can match with errors.Is instead of comparing strings.
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCollectionNotFound   = errors.New("collection not found")
	ErrWishlistLineNotFound = errors.New("wishlist line not found")
)
