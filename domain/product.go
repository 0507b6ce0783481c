package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_name TEXT NOT NULL,
//     category_id  BIGINT NOT NULL,
//     attributes   JSONB,
//     price        NUMERIC NOT NULL,
//     is_visible   BOOLEAN DEFAULT TRUE,
//     created_at   TIMESTAMPTZ DEFAULT NOW(),
//     updated_at   TIMESTAMPTZ DEFAULT NOW()
// );

// Product is the catalog entity. Attributes holds the declared
// attribute assignments as a JSONB document mapping an attribute name
// to one or more values, e.g. {"color": ["red", "blue"], "material": ["wool"]}.
type Product struct {
	ID          uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName string            `gorm:"column:product_name;type:text;not null" json:"product_name"`
	CategoryID  uint64            `gorm:"column:category_id;not null" json:"category_id"`
	Collections []Collection      `gorm:"many2many:collection_products" json:"collections,omitempty"`
	Attributes  datatypes.JSONMap `gorm:"column:attributes;type:jsonb" json:"attributes"`
	Price       float64           `gorm:"column:price;type:numeric;not null" json:"price"`
	IsVisible   bool              `gorm:"column:is_visible;default:true" json:"is_visible"`
	CreatedAt   time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
