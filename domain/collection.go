package domain

import (
	"time"
)

// CREATE TABLE public.collections (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     collection_name TEXT NOT NULL,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );
//
// CREATE TABLE public.collection_products (
//     collection_id BIGINT NOT NULL REFERENCES collections(id),
//     product_id    BIGINT NOT NULL REFERENCES products(id),
//     PRIMARY KEY (collection_id, product_id)
// );

// Collection is a curated product grouping ("Summer", "New Arrivals").
// Membership order is irrelevant; a product can belong to any number
// of collections.
type Collection struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CollectionName string    `gorm:"column:collection_name;type:text;not null" json:"collection_name"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Collection) TableName() string {
	return "collections"
}

// CollectionProduct is the membership join row. Kept explicit so the
// repository can upsert and delete memberships without loading either
// side of the association.
type CollectionProduct struct {
	CollectionID uint64 `gorm:"column:collection_id;primaryKey"`
	ProductID    uint64 `gorm:"column:product_id;primaryKey"`
}

func (CollectionProduct) TableName() string {
	return "collection_products"
}
