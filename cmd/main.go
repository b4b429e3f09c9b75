package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/spydz12/Eleman-Shoes/internal/clients"
	"github.com/spydz12/Eleman-Shoes/internal/config"
	"github.com/spydz12/Eleman-Shoes/internal/events"
	"github.com/spydz12/Eleman-Shoes/internal/handlers"
	"github.com/spydz12/Eleman-Shoes/internal/middleware"
	"github.com/spydz12/Eleman-Shoes/internal/models"
	"github.com/spydz12/Eleman-Shoes/internal/repository"
	"github.com/spydz12/Eleman-Shoes/internal/services"

	gosharedmw "github.com/Tesseract-Nexus/go-shared/middleware"
	"github.com/Tesseract-Nexus/go-shared/tracing"
)

const serviceName = "eleman-shoes"

// @title Edo's Footwear & Eleman Shoes API
// @version 1.0
// @description Wholesale footwear catalog: public storefront and admin back office
// @termsOfService http://swagger.io/terms/

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg)

	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := migrateDatabase(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Redis client (optional - graceful degradation if Redis unavailable)
	redisClient := initRedis(cfg)

	// Activity log lives in MongoDB when configured, Postgres otherwise
	var mongoClient *mongo.Client
	var activityRepo repository.ActivityLogRepositoryInterface
	if cfg.Mongo.URI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err == nil {
			err = mongoClient.Ping(ctx, nil)
		}
		cancel()
		if err != nil {
			log.Printf("WARNING: Failed to connect to MongoDB: %v (activity log falls back to Postgres)", err)
			mongoClient = nil
		} else {
			activityRepo = repository.NewMongoActivityLogRepository(mongoClient.Database(cfg.Mongo.Database).Collection("activity_logs"))
			log.Println("✓ MongoDB activity log enabled")
		}
	}
	if activityRepo == nil {
		activityRepo = repository.NewActivityLogRepository(db)
	}

	// Initialize repositories
	brandRepo := repository.NewBrandRepository(db, redisClient)
	divisionRepo := repository.NewDivisionRepository(db, redisClient)
	categoryRepo := repository.NewCategoryRepository(db, redisClient)
	productRepo := repository.NewProductRepository(db, redisClient)
	settingsRepo := repository.NewSettingsRepository(db, redisClient)
	orderRepo := repository.NewOrderRepository(db, redisClient)
	clientRepo := repository.NewClientRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Initialize events publisher (optional)
	var activityPublisher services.ActivityPublisher
	var eventsPublisher *events.Publisher
	if cfg.NATS.URL != "" {
		eventsPublisher, err = events.NewPublisher(cfg.NATS.URL, serviceName, logger)
		if err != nil {
			log.Printf("WARNING: Failed to initialize events publisher: %v (activity events disabled)", err)
		} else {
			activityPublisher = eventsPublisher
			log.Println("✓ Events publisher initialized")
		}
	}

	documentClient := clients.NewDocumentClient(cfg.Storage.DocumentServiceURL, cfg.Storage.Bucket, serviceName)

	// Initialize OpenTelemetry tracing
	var tracerProvider *tracing.TracerProvider
	if cfg.IsProduction() {
		tracerProvider, err = tracing.InitTracer(tracing.ProductionConfig(serviceName))
	} else {
		tracerProvider, err = tracing.InitTracer(tracing.DefaultConfig(serviceName))
	}
	if err != nil {
		log.Printf("WARNING: Failed to initialize tracing: %v (continuing without tracing)", err)
	} else {
		log.Println("✓ OpenTelemetry tracing initialized")
	}

	metrics := gosharedmw.InitGlobalMetrics("edoseleman", "eleman_shoes")
	log.Println("✓ Prometheus metrics initialized")

	// Initialize services
	mediaService := services.NewMediaService(documentClient)
	brandService := services.NewBrandService(brandRepo, mediaService)
	divisionService := services.NewDivisionService(divisionRepo)
	categoryService := services.NewCategoryService(categoryRepo, divisionRepo)
	productService := services.NewProductService(productRepo, mediaService)
	orderService := services.NewOrderService(orderRepo)
	clientService := services.NewClientService(clientRepo)
	settingsService := services.NewSettingsService(settingsRepo, mediaService)
	invoiceService := services.NewInvoiceService(invoiceRepo, orderRepo, clientRepo, settingsService, mediaService, cfg.App.InvoiceCurrency)
	dashboardService := services.NewDashboardService(productRepo, orderRepo, brandRepo)
	activityService := services.NewActivityService(activityRepo, activityPublisher, logger)
	authService := services.NewAuthService(adminRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour, serviceName)
	exportService := services.NewExportService()

	seed(divisionService, settingsService, authService, cfg)

	checks := map[string]handlers.HealthChecker{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if redisClient != nil {
		checks["redis"] = orderRepo.RedisHealth
	}
	if mongoClient != nil {
		checks["mongo"] = func(ctx context.Context) error {
			return mongoClient.Ping(ctx, nil)
		}
	}

	h := routeHandlers{
		health:    handlers.NewHealthHandler(serviceName, checks),
		auth:      handlers.NewAuthHandler(authService),
		brands:    handlers.NewBrandHandler(brandService, activityService),
		catalog:   handlers.NewCatalogHandler(divisionService, categoryService, activityService),
		products:  handlers.NewProductHandler(productService, exportService, activityService),
		orders:    handlers.NewOrderHandler(orderService, exportService, activityService),
		clients:   handlers.NewClientHandler(clientService, exportService, activityService),
		invoices:  handlers.NewInvoiceHandler(invoiceService, activityService),
		settings:  handlers.NewSettingsHandler(settingsService, activityService),
		dashboard: handlers.NewDashboardHandler(dashboardService, activityService),
		storefront: handlers.NewStorefrontHandler(handlers.StorefrontDeps{
			Settings:       settingsService,
			Brands:         brandService,
			Divisions:      divisionService,
			Categories:     categoryService,
			Products:       productService,
			Orders:         orderService,
			WhatsappNumber: cfg.App.StorefrontNumber,
		}),
	}

	router := setupRouter(cfg, h, authService, metrics, logger)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down Eleman Shoes service...")

		if eventsPublisher != nil {
			eventsPublisher.Close()
			log.Println("✓ Events publisher closed")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if mongoClient != nil {
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Printf("Error disconnecting MongoDB: %v", err)
			}
		}
		if redisClient != nil {
			_ = redisClient.Close()
		}
		if tracerProvider != nil {
			if err := tracerProvider.Shutdown(ctx); err != nil {
				log.Printf("Error shutting down tracer provider: %v", err)
			} else {
				log.Println("✓ Tracer provider shut down")
			}
		}

		log.Println("Eleman Shoes service stopped")
		os.Exit(0)
	}()

	log.Printf("Starting Eleman Shoes service on %s", cfg.GetServerAddress())
	if err := router.Run(cfg.GetServerAddress()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// initDatabase initializes the database connection
func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// migrateDatabase runs database migrations
func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Brand{},
		&models.Division{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.Client{},
		&models.Invoice{},
		&models.Settings{},
		&models.AdminUser{},
		&models.ActivityLog{},
	)
}

func initRedis(cfg *config.Config) *redis.Client {
	if cfg.Redis.URL == "" {
		log.Println("REDIS_URL not configured, caching disabled")
		return nil
	}

	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Printf("WARNING: Failed to parse Redis URL: %v (caching will be disabled)", err)
		return nil
	}
	if cfg.Redis.Password != "" {
		opt.Password = cfg.Redis.Password
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: Failed to connect to Redis: %v (caching will be disabled)", err)
		_ = client.Close()
		return nil
	}
	log.Println("✓ Redis connected successfully")
	return client
}

// seed creates the default divisions, the settings record and the first admin
func seed(divisions *services.DivisionService, settings *services.SettingsService, auth *services.AuthService, cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if n, err := divisions.EnsureDefaults(ctx); err != nil {
		log.Printf("WARNING: Failed to seed divisions: %v", err)
	} else if n > 0 {
		log.Printf("✓ Seeded %d default divisions", n)
	}

	if _, err := settings.Get(ctx); err != nil {
		log.Printf("WARNING: Failed to initialize settings: %v", err)
	}

	created, err := auth.EnsureBootstrapAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, cfg.Auth.AdminName)
	if err != nil {
		log.Printf("WARNING: Failed to create bootstrap admin: %v", err)
	} else if created {
		log.Printf("✓ Bootstrap admin %s created", cfg.Auth.AdminEmail)
	}
}

type routeHandlers struct {
	health     *handlers.HealthHandler
	auth       *handlers.AuthHandler
	brands     *handlers.BrandHandler
	catalog    *handlers.CatalogHandler
	products   *handlers.ProductHandler
	orders     *handlers.OrderHandler
	clients    *handlers.ClientHandler
	invoices   *handlers.InvoiceHandler
	settings   *handlers.SettingsHandler
	dashboard  *handlers.DashboardHandler
	storefront *handlers.StorefrontHandler
}

// setupRouter configures the Gin router with middleware and routes
func setupRouter(cfg *config.Config, h routeHandlers, auth middleware.TokenParser, metrics *gosharedmw.Metrics, logger *logrus.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = models.MaxImageSizeBytes

	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(gosharedmw.SecurityHeaders())

	router.Use(gosharedmw.RateLimit())
	log.Println("✓ Rate limiting enabled")

	router.Use(middleware.SetupCORS(cfg.Server.AllowedOrigins))

	// Add observability middleware (metrics + tracing)
	router.Use(metrics.Middleware())
	router.Use(tracing.GinMiddleware(serviceName))

	router.GET("/health", h.health.HealthCheck)
	router.GET("/ready", h.health.ReadinessCheck)
	router.GET("/metrics", gosharedmw.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	loginLimiter := middleware.NewRateLimiter(cfg.Auth.LoginRateLimit)
	api.POST("/auth/login", loginLimiter.Middleware(), h.auth.Login)

	storefront := api.Group("/storefront")
	storefront.Use(middleware.Locale())
	{
		storefront.GET("/settings", h.storefront.GetSettings)
		storefront.GET("/brands", h.storefront.ListBrands)
		storefront.GET("/divisions", h.storefront.ListDivisions)
		storefront.GET("/categories", h.storefront.ListCategories)
		storefront.GET("/products", h.storefront.ListProducts)
		storefront.GET("/products/:id", h.storefront.GetProduct)
		storefront.GET("/products/:id/whatsapp", h.storefront.GetWhatsappLink)
		storefront.GET("/contact", h.storefront.GetContact)
		storefront.POST("/orders", h.storefront.CreateOrder)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin(auth))
	uploadLimit := middleware.BodyLimit(models.MaxUploadBodyBytes)
	{
		admin.GET("/me", h.auth.Me)
		admin.GET("/dashboard/stats", h.dashboard.GetStats)
		admin.GET("/activity", h.dashboard.ListActivity)

		brands := admin.Group("/brands")
		{
			brands.GET("", h.brands.ListBrands)
			brands.POST("", h.brands.CreateBrand)
			brands.GET("/:id", h.brands.GetBrand)
			brands.PUT("/:id", h.brands.UpdateBrand)
			brands.DELETE("/:id", h.brands.DeleteBrand)
			brands.POST("/:id/logo", uploadLimit, h.brands.UploadBrandLogo)
		}

		divisions := admin.Group("/divisions")
		{
			divisions.GET("", h.catalog.ListDivisions)
			divisions.POST("", h.catalog.CreateDivision)
			divisions.PUT("/:id", h.catalog.UpdateDivision)
			divisions.DELETE("/:id", h.catalog.DeleteDivision)
		}

		categories := admin.Group("/categories")
		{
			categories.GET("", h.catalog.ListCategories)
			categories.POST("", h.catalog.CreateCategory)
			categories.PUT("/:id", h.catalog.UpdateCategory)
			categories.DELETE("/:id", h.catalog.DeleteCategory)
		}

		products := admin.Group("/products")
		{
			products.GET("", h.products.ListProducts)
			products.GET("/export", h.products.ExportProducts)
			products.POST("", h.products.CreateProduct)
			products.GET("/:id", h.products.GetProduct)
			products.PUT("/:id", h.products.UpdateProduct)
			products.DELETE("/:id", h.products.DeleteProduct)
			products.PATCH("/:id/status", h.products.UpdateProductStatus)

			products.POST("/:id/colors", uploadLimit, h.products.AddColor)
			products.PUT("/:id/colors/:color", h.products.UpdateColor)
			products.DELETE("/:id/colors/:color", h.products.RemoveColor)
			products.POST("/:id/colors/:color/images", uploadLimit, h.products.UploadColorImages)
			products.DELETE("/:id/colors/:color/images/:image", h.products.RemoveColorImage)
			products.PUT("/:id/colors/:color/main-image", h.products.SetMainImage)
		}

		admin.POST("/uploads/product-images", uploadLimit, h.products.UploadDraftImages)

		orders := admin.Group("/orders")
		{
			orders.GET("", h.orders.ListOrders)
			orders.GET("/export", h.orders.ExportOrders)
			orders.POST("", h.orders.CreateOrder)
			orders.GET("/:id", h.orders.GetOrder)
			orders.PATCH("/:id/status", h.orders.UpdateOrderStatus)
			orders.PUT("/:id/shipping", h.orders.UpdateOrderShipping)
			orders.DELETE("/:id", h.orders.DeleteOrder)
		}

		clientsGroup := admin.Group("/clients")
		{
			clientsGroup.GET("", h.clients.ListClients)
			clientsGroup.GET("/export", h.clients.ExportClients)
			clientsGroup.POST("", h.clients.CreateClient)
			clientsGroup.GET("/:id", h.clients.GetClient)
			clientsGroup.PUT("/:id", h.clients.UpdateClient)
			clientsGroup.DELETE("/:id", h.clients.DeleteClient)
		}

		invoices := admin.Group("/invoices")
		{
			invoices.GET("", h.invoices.ListInvoices)
			invoices.POST("", h.invoices.CreateInvoice)
			invoices.GET("/:id", h.invoices.GetInvoice)
			invoices.PATCH("/:id/status", h.invoices.UpdateInvoiceStatus)
			invoices.GET("/:id/pdf", h.invoices.DownloadInvoicePDF)
			invoices.POST("/:id/pdf", h.invoices.GenerateInvoicePDF)
			invoices.DELETE("/:id", h.invoices.DeleteInvoice)
		}

		settings := admin.Group("/settings")
		{
			settings.GET("", h.settings.GetSettings)
			settings.PUT("", h.settings.UpdateSettings)
			settings.POST("/logo/:brand", uploadLimit, h.settings.UploadLogo)
		}
	}

	return router
}
