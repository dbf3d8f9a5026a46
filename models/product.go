package models

import "time"

// ProductSpec is a single specification entry, either a bare string or a
// titled value, stored as-is.
type ProductSpec struct {
	Title string `bson:"title,omitempty" json:"title,omitempty"`
	Value string `bson:"value,omitempty" json:"value,omitempty"`
}

// ProductCondition describes a purchasable condition tier of a dimension
// (e.g. "new", "cargo worthy") with its own price and imagery.
type ProductCondition struct {
	Condition      string        `bson:"condition" json:"condition"`
	Price          float64       `bson:"price" json:"price"`
	Images         []string      `bson:"images,omitempty" json:"images,omitempty"`
	Description    string        `bson:"description,omitempty" json:"description,omitempty"`
	Specifications []ProductSpec `bson:"specifications,omitempty" json:"specifications,omitempty"`
}

// ProductDimension is a size variant of a product.
type ProductDimension struct {
	Dimension      string             `bson:"dimension" json:"dimension"`
	Price          float64            `bson:"price,omitempty" json:"price,omitempty"`
	Images         []string           `bson:"images,omitempty" json:"images,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Specifications []ProductSpec      `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Conditions     []ProductCondition `bson:"conditions,omitempty" json:"conditions,omitempty"`
}

// DeliveryOption is a shipping method offered for a product.
type DeliveryOption struct {
	Method string  `bson:"method" json:"method"`
	Price  float64 `bson:"price" json:"price"`
}

// Product is a catalog entry.
type Product struct {
	ID             string             `bson:"id" json:"id"`
	Name           string             `bson:"name" json:"name"`
	SKU            string             `bson:"sku,omitempty" json:"sku,omitempty"`
	Price          float64            `bson:"price" json:"price"`
	Description    string             `bson:"description" json:"description"`
	Specifications []ProductSpec      `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Images         []string           `bson:"images,omitempty" json:"images,omitempty"`
	Categories     []string           `bson:"categories,omitempty" json:"categories,omitempty"`
	Dimensions     []ProductDimension `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Delivery       []DeliveryOption   `bson:"delivery,omitempty" json:"delivery,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updated_at"`
}
