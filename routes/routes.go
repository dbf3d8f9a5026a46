package routes

import (
	"net/http"
	"time"

	"github.com/rightguydaniel/deluxconex-BE/handlers"
	"github.com/rightguydaniel/deluxconex-BE/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterAddressRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
		api.POST("/forgot-password", hb.Auth.ForgotPassword)
		api.POST("/reset-password", hb.Auth.ResetPassword)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.GetProfile)
		api.PUT("/me", hb.Auth.UpdateProfile)
		api.PUT("/password", hb.Auth.UpdatePassword)
	}
}

// RegisterCatalogRoutes registers product endpoints. Reads are public.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/products")
	{
		api.GET("", hb.Product.ListProducts)
		api.GET("/search", hb.Product.SearchProducts)
		api.GET("/:id", hb.Product.GetProduct)
	}
}

// RegisterCartRoutes registers shopping cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Cart.GetCart)
		api.DELETE("", hb.Cart.ClearCart)
		api.POST("/items", hb.Cart.AddItem)
		api.PUT("/items/:productId", hb.Cart.UpdateQuantity)
		api.DELETE("/items/:productId", hb.Cart.RemoveItem)
	}
}

// RegisterAddressRoutes registers saved-address endpoints.
func RegisterAddressRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/addresses")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Address.CreateAddress)
		api.GET("", hb.Address.GetAddresses)
		api.PUT("/:id", hb.Address.UpdateAddress)
		api.PUT("/:id/default", hb.Address.SetDefaultAddress)
		api.DELETE("/:id", hb.Address.DeleteAddress)
	}
}

// RegisterOrderRoutes registers order and invoice history endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	orders := r.Group("/api/orders")
	{
		orders.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		orders.GET("", hb.Order.GetMyOrders)
		orders.GET("/:id", hb.Order.GetOrder)
	}

	invoices := r.Group("/api/invoices")
	{
		invoices.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		invoices.GET("", hb.Invoice.GetMyInvoices)
		invoices.GET("/:id", hb.Invoice.GetInvoice)
	}
}

// RegisterPaymentRoutes registers the checkout and wire-transfer payment
// endpoints. The wire info and proof endpoints are deliberately public:
// possession of a valid link token is the authorization.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	checkout := r.Group("/api/checkout")
	{
		// Signature-authenticated, must stay outside the JWT middleware.
		checkout.POST("/stripe/webhook", hb.Checkout.StripeWebhook)

		checkout.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		checkout.POST("/stripe", hb.Checkout.CreateStripePayment)
		checkout.POST("/stripe/confirm", hb.Checkout.ConfirmStripePayment)
		checkout.POST("/paypal", hb.Checkout.CreatePayPalOrder)
		checkout.POST("/paypal/capture", hb.Checkout.CapturePayPalOrder)
		checkout.POST("/paypal/cancel", hb.Checkout.CancelPayPalOrder)
	}

	wire := r.Group("/api/payments/wire")
	{
		wire.GET("/info", hb.Wire.GetWirePaymentInfo)
		wire.POST("/proof", hb.Wire.UploadWirePaymentProof)

		wire.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		wire.POST("/request", hb.Wire.RequestWirePayment)
	}
}

// RegisterAdminRoutes registers the administrative endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.AdminOnlyMiddleware())
	{
		api.GET("/users", hb.Admin.ListUsers)
		api.PUT("/users/:id/block", hb.Admin.BlockUser)
		api.PUT("/users/:id/unblock", hb.Admin.UnblockUser)
		api.DELETE("/users/:id", hb.Admin.DeleteUser)

		api.POST("/products", hb.Product.CreateProduct)
		api.PUT("/products/:id", hb.Product.UpdateProduct)
		api.DELETE("/products/:id", hb.Product.DeleteProduct)

		api.GET("/orders", hb.Order.ListAllOrders)
		api.PUT("/orders/:id/status", hb.Order.UpdateOrderStatus)

		api.GET("/invoices", hb.Invoice.ListAllInvoices)
		api.PUT("/invoices/:id/status", hb.Invoice.UpdateInvoiceStatus)
		api.POST("/invoices/:id/send", hb.Invoice.SendInvoice)

		api.GET("/payments/wire", hb.Wire.ListPaymentRequests)
		api.POST("/payments/wire/:id/issue", hb.Wire.IssueWireDetails)
		api.PUT("/payments/wire/:id/status", hb.Wire.UpdateWireStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "DeluxConex API"})
	})
}
