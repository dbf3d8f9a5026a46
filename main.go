package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rightguydaniel/deluxconex-BE/config"
	"github.com/rightguydaniel/deluxconex-BE/cron"
	"github.com/rightguydaniel/deluxconex-BE/database"
	addressRepoPkg "github.com/rightguydaniel/deluxconex-BE/database/repository/address"
	cartRepoPkg "github.com/rightguydaniel/deluxconex-BE/database/repository/cart"
	invoiceRepoPkg "github.com/rightguydaniel/deluxconex-BE/database/repository/invoice"
	orderRepoPkg "github.com/rightguydaniel/deluxconex-BE/database/repository/order"
	paymentRepoPkg "github.com/rightguydaniel/deluxconex-BE/database/repository/payment"
	productRepoPkg "github.com/rightguydaniel/deluxconex-BE/database/repository/product"
	userRepoPkg "github.com/rightguydaniel/deluxconex-BE/database/repository/user"
	"github.com/rightguydaniel/deluxconex-BE/handlers"
	"github.com/rightguydaniel/deluxconex-BE/middleware"
	"github.com/rightguydaniel/deluxconex-BE/routes"
	addressSvc "github.com/rightguydaniel/deluxconex-BE/services/address"
	cartSvc "github.com/rightguydaniel/deluxconex-BE/services/cart"
	"github.com/rightguydaniel/deluxconex-BE/services/catalog"
	"github.com/rightguydaniel/deluxconex-BE/services/checkout"
	invoiceSvc "github.com/rightguydaniel/deluxconex-BE/services/invoice"
	"github.com/rightguydaniel/deluxconex-BE/services/notification"
	orderSvc "github.com/rightguydaniel/deluxconex-BE/services/order"
	"github.com/rightguydaniel/deluxconex-BE/services/storage"
	"github.com/rightguydaniel/deluxconex-BE/services/user"
	"github.com/rightguydaniel/deluxconex-BE/services/wire"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/gin-gonic/gin"
	"github.com/plutov/paypal/v4"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	storageService, err := storage.NewCloudinaryStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	codec, err := wire.NewCodec(config.AppConfig.WireEncryptionSecret)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	paypalAPIBase := paypal.APIBaseSandBox
	if config.AppConfig.PayPalLive {
		paypalAPIBase = paypal.APIBaseLive
	}
	paypalClient, err := paypal.NewClient(config.AppConfig.PayPalClientID, config.AppConfig.PayPalClientSecret, paypalAPIBase)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize paypal client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	cartRepo := cartRepoPkg.NewMongoCartRepo()
	addressRepo := addressRepoPkg.NewMongoAddressRepo()
	productRepo := productRepoPkg.NewMongoProductRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// Outbound mail: queued on Redis, delivered by the worker, with a
	// synchronous fallback when the queue is down.
	smtpMailer := notification.NewSMTPMailer()
	mailer := notification.NewQueueMailer(smtpMailer)
	cron.InitMailWorker(smtpMailer)

	// services.
	userService := &user.DefaultUserService{Repo: userRepo, Mailer: mailer, BaseURL: config.AppConfig.AppBaseURL}
	cartService := &cartSvc.DefaultCartService{Repo: cartRepo}
	addressService := &addressSvc.DefaultAddressService{Repo: addressRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: productRepo, Storage: storageService}
	orderService := &orderSvc.DefaultOrderService{Repo: orderRepo}
	invoiceService := &invoiceSvc.DefaultInvoiceService{Repo: invoiceRepo, Users: userRepo, Mailer: mailer}

	checkoutService := &checkout.DefaultCheckoutService{
		Orders:    orderRepo,
		Invoices:  invoiceRepo,
		Users:     userRepo,
		Carts:     cartRepo,
		Addresses: addressRepo,
		Mailer:    mailer,
		PayPal:    paypalClient,

		StripeWebhookSecret: config.AppConfig.StripeWebhookSecret,
	}

	wireService := &wire.DefaultWireService{
		Requests:   paymentRepo,
		Orders:     orderRepo,
		Invoices:   invoiceRepo,
		Users:      userRepo,
		Carts:      cartRepo,
		Addresses:  addressRepo,
		Mailer:     mailer,
		Storage:    storageService,
		Codec:      codec,
		BaseURL:    config.AppConfig.AppBaseURL,
		AdminEmail: config.AppConfig.AdminEmail,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Auth:     handlers.NewAuthHandler(userService),
		Cart:     handlers.NewCartHandler(cartService),
		Product:  handlers.NewProductHandler(catalogService),
		Address:  handlers.NewAddressHandler(addressService),
		Order:    handlers.NewOrderHandler(orderService),
		Invoice:  handlers.NewInvoiceHandler(invoiceService),
		Checkout: handlers.NewCheckoutHandler(checkoutService),
		Wire:     handlers.NewWirePaymentHandler(wireService),
		Admin:    handlers.NewAdminHandler(userService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	_ = mailer.Close()
	logger.Sugar().Info("main: server stopped gracefully")
}
