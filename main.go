package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"trexstore/cart"
	"trexstore/config"
	"trexstore/email"
	"trexstore/handlers"
	"trexstore/middleware"
	"trexstore/orders"
	"trexstore/payment"
	"trexstore/runs"
	"trexstore/storage"
)

func main() {
	cfg := config.LoadConfig()

	var (
		cartPersistence cart.Persistence
		orderStore      orders.Store
		stager          orders.Stager
		gateway         payment.Gateway
		uploader        storage.Uploader
		runSource       runs.Source
		mailer          email.Sender
	)

	if cfg.DevMode {
		log.Println("DEV_MODE: running with in-process substitutes for all external services")
		cartPersistence = cart.NewMemoryPersistence()
		orderStore = orders.NewMemoryStore()
		stager = orders.NewMemoryStager()
		gateway = payment.NewMockGateway()
		uploader = storage.NewMemoryUploader()
		runSource = runs.NewStaticSource(runs.DevFixtures(time.Now()))
		mailer = email.NoopSender{}
	} else {
		// Initialize database
		if err := config.InitDB(cfg.MySQLDSN); err != nil {
			log.Fatalf("Failed to connect to MySQL: %v", err)
		}
		if err := config.EnsureTables(config.DB); err != nil {
			log.Fatalf("Failed to initialize database tables: %v", err)
		}

		redisClient, err := config.InitRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		cartPersistence = cart.NewRedisPersistence(redisClient)
		orderStore = orders.NewMySQLStore(config.DB)
		stager = orders.NewRedisStager(redisClient)
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey)

		uploader, err = storage.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}

		if cfg.RunsCSVPath != "" {
			runSource = runs.NewCSVSource(cfg.RunsCSVPath)
		} else {
			runSource = runs.NewMySQLSource(config.DB)
		}

		mailer = email.NewEmailJSSender(cfg.EmailJSServiceID, cfg.EmailJSTemplateID, cfg.EmailJSUserID)
	}

	orderService := orders.NewService(orderStore, uploader)
	reconciler := orders.NewReconciler(gateway, orderService, stager, mailer)
	h := handlers.New(cartPersistence, runSource, gateway, orderService, stager, reconciler, mailer, cfg.BaseURL)
	sessions := middleware.NewSessionManager(cfg.SessionSecret)

	// Create a new Gin router
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health-check", h.CheckConnection)

	// Public routes
	r.GET("/products", h.GetAllProducts)
	r.GET("/products/:slug", h.GetProduct)
	r.GET("/runs", h.GetRuns)
	r.GET("/runs/upcoming", h.GetUpcomingRuns)

	// Cart and checkout routes (cart session required)
	session := r.Group("/")
	session.Use(middleware.CartSession(sessions))
	{
		session.GET("/cart", h.GetCart)
		session.POST("/cart/items", h.AddToCart)
		session.PUT("/cart/items", h.UpdateCartLine)
		session.DELETE("/cart/items", h.RemoveFromCart)
		session.DELETE("/cart", h.ClearCart)

		session.GET("/checkout/collection-dates", h.GetCollectionDates)
		session.POST("/checkout", h.Checkout)

		session.GET("/order-confirmation", h.OrderConfirmation)
		session.POST("/payment/proof", h.SubmitPaymentProof)
	}

	// Start the server
	log.Printf("Server starting on http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
