package models

import "time"

type AddressType string

const (
	AddressBilling  AddressType = "billing"
	AddressShipping AddressType = "shipping"
)

// Address is a saved billing or shipping address. At most one address per
// user carries IsDefault.
type Address struct {
	ID             string      `bson:"id" json:"id"`
	UserID         string      `bson:"userId" json:"userId"`
	Type           AddressType `bson:"type" json:"type"`
	Street         string      `bson:"street" json:"street"`
	City           string      `bson:"city" json:"city"`
	State          string      `bson:"state" json:"state"`
	PostalCode     string      `bson:"postalCode" json:"postalCode"`
	Country        string      `bson:"country" json:"country"`
	IsDefault      bool        `bson:"isDefault" json:"isDefault"`
	Phone          string      `bson:"phone,omitempty" json:"phone,omitempty"`
	AdditionalInfo string      `bson:"additionalInfo,omitempty" json:"additionalInfo,omitempty"`
	CreatedAt      time.Time   `bson:"createdAt" json:"created_at"`
	UpdatedAt      time.Time   `bson:"updatedAt" json:"updated_at"`
}

// ShippingAddress is the address snapshot embedded in an order at creation
// time. It is decoupled from the Address row so later edits do not rewrite
// history.
type ShippingAddress struct {
	Street     string `bson:"street" json:"street"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

// Snapshot copies the routable fields of an address.
func (a *Address) Snapshot() ShippingAddress {
	return ShippingAddress{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
