package models

import "time"

// CartDimension is the chosen size variant of a cart item.
type CartDimension struct {
	Dimension       string  `bson:"dimension" json:"dimension"`
	PriceAdjustment float64 `bson:"priceAdjustment,omitempty" json:"priceAdjustment,omitempty"`
}

// CartCondition is the chosen condition tier of a cart item.
type CartCondition struct {
	Condition       string  `bson:"condition" json:"condition"`
	PriceAdjustment float64 `bson:"priceAdjustment,omitempty" json:"priceAdjustment,omitempty"`
}

// CartDelivery is the chosen delivery method of a cart item.
type CartDelivery struct {
	Method string  `bson:"method" json:"method"`
	Price  float64 `bson:"price" json:"price"`
}

// CartItem is one configured product line in a cart. ItemPrice is the final
// per-unit price (base plus adjustments); TotalPrice is ItemPrice * Quantity.
type CartItem struct {
	ProductID         string         `bson:"productId" json:"productId"`
	Name              string         `bson:"name" json:"name"`
	BasePrice         float64        `bson:"basePrice" json:"basePrice"`
	Quantity          int            `bson:"quantity" json:"quantity"`
	Image             string         `bson:"image,omitempty" json:"image,omitempty"`
	SelectedColor     string         `bson:"selectedColor,omitempty" json:"selectedColor,omitempty"`
	SelectedDimension *CartDimension `bson:"selectedDimension,omitempty" json:"selectedDimension,omitempty"`
	SelectedCondition *CartCondition `bson:"selectedCondition,omitempty" json:"selectedCondition,omitempty"`
	SelectedDelivery  *CartDelivery  `bson:"selectedDelivery,omitempty" json:"selectedDelivery,omitempty"`
	ItemPrice         float64        `bson:"itemPrice" json:"itemPrice"`
	TotalPrice        float64        `bson:"totalPrice" json:"totalPrice"`
}

// Cart holds a user's pending items. One cart per user.
type Cart struct {
	ID        string     `bson:"id" json:"id"`
	UserID    string     `bson:"userId" json:"userId"`
	Items     []CartItem `bson:"items" json:"items"`
	Subtotal  float64    `bson:"subtotal" json:"subtotal"`
	Shipping  float64    `bson:"shipping" json:"shipping"`
	Tax       float64    `bson:"tax" json:"tax"`
	Total     float64    `bson:"total" json:"total"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updated_at"`
}

// Empty reports whether the cart has no items.
func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}
