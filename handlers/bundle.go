package handlers

import (
	userRepoPkg "github.com/rightguydaniel/deluxconex-BE/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Auth     *AuthHandler
	Cart     *CartHandler
	Product  *ProductHandler
	Address  *AddressHandler
	Order    *OrderHandler
	Invoice  *InvoiceHandler
	Checkout *CheckoutHandler
	Wire     *WirePaymentHandler
	Admin    *AdminHandler
}
