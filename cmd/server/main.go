package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
	"github.com/spacatalog/backend/internal/infrastructure/auth"
	"github.com/spacatalog/backend/internal/infrastructure/config"
	"github.com/spacatalog/backend/internal/infrastructure/event"
	"github.com/spacatalog/backend/internal/infrastructure/logger"
	"github.com/spacatalog/backend/internal/infrastructure/persistence"
	"github.com/spacatalog/backend/internal/infrastructure/storage"
	"github.com/spacatalog/backend/internal/interfaces/http/handler"
	"github.com/spacatalog/backend/internal/interfaces/http/middleware"
	"github.com/spacatalog/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			Spa Catalog API
//	@version		1.0
//	@description	Treatment catalog backend with manual ordering, placements, incompatibility tracking and image galleries

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting spa catalog backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	zoneRepo := persistence.NewGormZoneRepository(db.DB)
	treatmentRepo := persistence.NewGormTreatmentRepository(db.DB)
	zoneConfigRepo := persistence.NewGormZoneConfigRepository(db.DB)
	comboRepo := persistence.NewGormComboRepository(db.DB)
	journeyRepo := persistence.NewGormJourneyRepository(db.DB)
	itemOrderRepo := persistence.NewGormItemOrderRepository(db.DB)
	placementRepo := persistence.NewGormPlacementRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Initialize image storage
	imageStorage, err := storage.NewS3ImageStorage(&cfg.Storage,
		storage.WithLogger(log),
		storage.WithPresignExpiration(cfg.Storage.PresignExpiration),
	)
	if err != nil {
		log.Fatal("Failed to initialize image storage", zap.Error(err))
	}

	// Initialize event bus with an audit log subscriber
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(catalogapp.NewAuditLogHandler(log))

	// Initialize application services
	resolver := catalogapp.NewItemResolver(treatmentRepo, comboRepo, journeyRepo, zoneConfigRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	zoneService := catalogapp.NewZoneService(zoneRepo, categoryRepo, txScope)
	treatmentService := catalogapp.NewTreatmentService(txScope, imageStorage, eventBus, log)
	comboService := catalogapp.NewComboService(txScope, imageStorage, eventBus, log)
	journeyService := catalogapp.NewJourneyService(txScope, resolver, imageStorage, log)
	placementService := catalogapp.NewPlacementService(placementRepo)
	orderingService := catalogapp.NewOrderingService(txScope, eventBus)
	listingService := catalogapp.NewListingService(categoryRepo, journeyRepo, itemOrderRepo, resolver)
	incompatibilityService := catalogapp.NewIncompatibilityService(txScope, eventBus)
	galleryService := catalogapp.NewGalleryService(txScope, imageStorage, eventBus, log)
	filterService := catalogapp.NewFilterService(txScope)

	// Initialize auth
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize HTTP handlers
	categoryHandler := handler.NewCategoryHandler(categoryService)
	zoneHandler := handler.NewZoneHandler(zoneService)
	treatmentHandler := handler.NewTreatmentHandler(treatmentService)
	comboHandler := handler.NewComboHandler(comboService)
	journeyHandler := handler.NewJourneyHandler(journeyService)
	placementHandler := handler.NewPlacementHandler(placementService, orderingService)
	orderingHandler := handler.NewOrderingHandler(orderingService)
	incompatibilityHandler := handler.NewIncompatibilityHandler(incompatibilityService)
	galleryHandler := handler.NewGalleryHandler(galleryService)
	filterHandler := handler.NewFilterHandler(filterService)
	listingHandler := handler.NewListingHandler(listingService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// The storefront listing endpoints are public; everything under
	// /admin requires a staff token
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPathPrefixes: []string{
			"/api/v1/catalog",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Admin routes (catalog management)
	adminRoutes := router.NewDomainGroup("admin", "/admin")

	// Category routes
	adminRoutes.POST("/categories", categoryHandler.Create)
	adminRoutes.GET("/categories", categoryHandler.List)
	adminRoutes.GET("/categories/:id", categoryHandler.GetByID)
	adminRoutes.PUT("/categories/:id", categoryHandler.Update)
	adminRoutes.PUT("/categories/:id/journey-placement", categoryHandler.SetJourneyPlacement)
	adminRoutes.PUT("/categories/:id/default-sort", categoryHandler.SetDefaultSort)
	adminRoutes.DELETE("/categories/:id", categoryHandler.Delete)
	adminRoutes.GET("/categories/:id/zones", zoneHandler.ListByCategory)

	// Zone routes
	adminRoutes.POST("/zones", zoneHandler.Create)
	adminRoutes.PATCH("/zones/:id", zoneHandler.Rename)
	adminRoutes.DELETE("/zones/:id", zoneHandler.Delete)

	// Treatment routes
	adminRoutes.POST("/treatments", treatmentHandler.Create)
	adminRoutes.GET("/treatments/:id", treatmentHandler.GetByID)
	adminRoutes.PUT("/treatments/:id", treatmentHandler.Update)
	adminRoutes.DELETE("/treatments/:id", treatmentHandler.Delete)
	adminRoutes.POST("/treatments/:id/zone-configs", treatmentHandler.AddZoneConfig)

	// Zone configuration routes
	adminRoutes.PUT("/zone-configs/:id", treatmentHandler.UpdateZoneConfig)
	adminRoutes.DELETE("/zone-configs/:id", treatmentHandler.DeleteZoneConfig)
	adminRoutes.GET("/zone-configs/:id/incompatibilities", incompatibilityHandler.ListForConfig)
	adminRoutes.GET("/zone-configs/:id/incompatibility-candidates", incompatibilityHandler.Candidates)
	adminRoutes.POST("/zone-configs/:id/incompatibilities/prune", incompatibilityHandler.Prune)

	// Combo routes
	adminRoutes.POST("/combos", comboHandler.Create)
	adminRoutes.GET("/combos/:id", comboHandler.GetByID)
	adminRoutes.PUT("/combos/:id", comboHandler.Update)
	adminRoutes.DELETE("/combos/:id", comboHandler.Delete)

	// Journey routes
	adminRoutes.POST("/journeys", journeyHandler.Create)
	adminRoutes.GET("/journeys/:id", journeyHandler.GetByID)
	adminRoutes.PUT("/journeys/:id", journeyHandler.Update)
	adminRoutes.DELETE("/journeys/:id", journeyHandler.Delete)

	// Placement routes
	adminRoutes.POST("/placements", placementHandler.Create)
	adminRoutes.GET("/placements", placementHandler.List)
	adminRoutes.GET("/placements/:id", placementHandler.GetByID)
	adminRoutes.PUT("/placements/:id", placementHandler.Update)
	adminRoutes.DELETE("/placements/:id", placementHandler.Delete)
	adminRoutes.PUT("/placements/:id/items", placementHandler.ReorderItems)

	// Manual ordering routes
	adminRoutes.GET("/ordering/:kind/:id", orderingHandler.GetContextOrder)
	adminRoutes.PUT("/ordering/:kind/:id", orderingHandler.ReconcileContext)

	// Incompatibility edge routes
	adminRoutes.PUT("/incompatibilities", incompatibilityHandler.Upsert)
	adminRoutes.DELETE("/incompatibilities", incompatibilityHandler.Delete)

	// Browse filter taxonomy routes
	adminRoutes.GET("/filters/:kind", filterHandler.List)
	adminRoutes.POST("/filters/:kind", filterHandler.Create)
	adminRoutes.PUT("/filters/:kind/:id", filterHandler.Update)
	adminRoutes.DELETE("/filters/:kind/:id", filterHandler.Delete)

	// Gallery routes
	adminRoutes.GET("/gallery/:kind/:id", galleryHandler.List)
	adminRoutes.PUT("/gallery/:kind/:id", galleryHandler.ApplyOrder)
	adminRoutes.DELETE("/gallery/:kind/:id/images/:imageId", galleryHandler.Remove)

	// Public storefront routes
	publicRoutes := router.NewDomainGroup("catalog", "/catalog")
	publicRoutes.GET("/categories/:slug", listingHandler.ListCategory)
	publicRoutes.GET("/journeys/:id", listingHandler.ListJourney)

	r.Register(adminRoutes).
		Register(publicRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
