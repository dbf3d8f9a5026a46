package models

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// OrderItem is a cart line frozen into an order.
type OrderItem struct {
	ProductID      string  `bson:"productId" json:"productId"`
	Name           string  `bson:"name" json:"name"`
	Price          float64 `bson:"price" json:"price"`
	Quantity       int     `bson:"quantity" json:"quantity"`
	Dimension      string  `bson:"dimension,omitempty" json:"dimension,omitempty"`
	DeliveryMethod string  `bson:"deliveryMethod,omitempty" json:"deliveryMethod,omitempty"`
	DeliveryPrice  float64 `bson:"deliveryPrice" json:"deliveryPrice"`
	Image          string  `bson:"image,omitempty" json:"image,omitempty"`
}

// Order is a placed order with an item and address snapshot taken at
// creation time.
type Order struct {
	ID              string          `bson:"id" json:"id"`
	UserID          string          `bson:"userId" json:"userId"`
	Items           []OrderItem     `bson:"items" json:"items"`
	Subtotal        float64         `bson:"subtotal" json:"subtotal"`
	Shipping        float64         `bson:"shipping" json:"shipping"`
	Tax             float64         `bson:"tax" json:"tax"`
	Total           float64         `bson:"total" json:"total"`
	Status          OrderStatus     `bson:"status" json:"status"`
	ShippingAddress ShippingAddress `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string          `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `bson:"paymentStatus" json:"paymentStatus"`
	PaymentProvider string          `bson:"paymentProvider,omitempty" json:"paymentProvider,omitempty"`
	PaymentRef      string          `bson:"paymentRef,omitempty" json:"paymentRef,omitempty"`
	TrackingNumber  string          `bson:"trackingNumber,omitempty" json:"trackingNumber,omitempty"`
	CreatedAt       time.Time       `bson:"createdAt" json:"created_at"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updated_at"`
}

// OrderItemsFromCart freezes cart lines into order lines.
func OrderItemsFromCart(items []CartItem) []OrderItem {
	out := make([]OrderItem, 0, len(items))
	for _, it := range items {
		oi := OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.ItemPrice,
			Quantity:  it.Quantity,
			Image:     it.Image,
		}
		if it.SelectedDimension != nil {
			oi.Dimension = it.SelectedDimension.Dimension
		}
		if it.SelectedDelivery != nil {
			oi.DeliveryMethod = it.SelectedDelivery.Method
			oi.DeliveryPrice = it.SelectedDelivery.Price
		}
		out = append(out, oi)
	}
	return out
}
