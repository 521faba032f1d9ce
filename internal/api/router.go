package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/RexKizzy22/rex-properties/docs"
	"github.com/RexKizzy22/rex-properties/internal/api/handler"
	"github.com/RexKizzy22/rex-properties/internal/api/middleware"
	"github.com/RexKizzy22/rex-properties/internal/core/service"
	"github.com/RexKizzy22/rex-properties/internal/infrastructure/assets"
	"github.com/RexKizzy22/rex-properties/internal/infrastructure/config"
	mongodb "github.com/RexKizzy22/rex-properties/internal/infrastructure/db/mongo"
	redisdb "github.com/RexKizzy22/rex-properties/internal/infrastructure/db/redis"
	"github.com/RexKizzy22/rex-properties/internal/infrastructure/oauth"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rex_properties"))

	// --- Dependencies ---
	propertyRepo := mongodb.NewPropertyRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	stateStore := redisdb.NewStateStore(rdb)

	uploader := assets.NewCloudinaryUploader(assets.Config{
		CloudName: cfg.Cloudinary.CloudName,
		APIKey:    cfg.Cloudinary.APIKey,
		APISecret: cfg.Cloudinary.APISecret,
		Folder:    cfg.Cloudinary.Folder,
	}, log)

	provider := oauth.NewGoogleProvider(oauth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})

	propertyService := service.NewPropertyService(propertyRepo, uploader, log)
	identityService := service.NewIdentityService(userRepo, cfg.JWTSecret, cfg.SessionTTL, log)
	bookmarkService := service.NewBookmarkService(userRepo, propertyRepo, log)

	propertyHandler := handler.NewPropertyHandler(propertyService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	authHandler := handler.NewAuthHandler(provider, identityService, stateStore)

	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.GET("/auth/google", authHandler.Login)
	e.GET("/auth/google/callback", authHandler.Callback)

	// --- Property routes (reads are public, mutations owner-gated) ---
	e.GET("/properties", propertyHandler.List)
	e.GET("/properties/featured", propertyHandler.ListFeatured)
	e.GET("/properties/:id", propertyHandler.Get)
	e.GET("/properties/user/:userId", propertyHandler.ListByOwner)
	e.POST("/properties", propertyHandler.Create, authRequired)
	e.PUT("/properties/:id", propertyHandler.Update, authRequired)
	e.DELETE("/properties/:id", propertyHandler.Delete, authRequired)

	// --- Bookmark routes ---
	bookmarks := e.Group("/bookmarks", authRequired)
	bookmarks.GET("", bookmarkHandler.List)
	bookmarks.POST("", bookmarkHandler.Toggle)
	bookmarks.POST("/check", bookmarkHandler.Check)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
