package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/smart-shop-assistant/docs"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/api/handlers"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/api/middleware"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/cache"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/chat"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/config"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/health"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/metrics"
	repository "github.com/aaravmahajanofficial/smart-shop-assistant/internal/repositories"
	service "github.com/aaravmahajanofficial/smart-shop-assistant/internal/services"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/telemetry"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const version = "1.0.0"

// @title                       Smart Shop Assistant API
// @version                     1.0
// @description                 Catalog, cart and rule-based shopping assistant.
// @host                        localhost:8080
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
// @securityDefinitions.apikey  AdminKey
// @in                          header
// @name                        X-Admin-Key
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStartup()

	// Tracing
	shutdownTracer, err := telemetry.InitTracer(startupCtx, cfg.Otel, cfg.Env, version)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(startupCtx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(startupCtx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg.RateConfig)
	productCache := cache.NewRedisCache(redisClient, cfg.Cache)

	// Services
	tokens := service.NewTokenIssuer([]byte(cfg.Security.JWTKey), cfg.Security.TokenTTL())
	userService := service.NewUserService(repos.User, rateLimiter, tokens)
	productService := service.NewProductService(repos.Product, productCache)
	cartService := service.NewCartService(repos.Cart)
	chatService := service.NewChatService(chat.NewResponder(repos.Product), repos.Chat, cfg.Chat.HistoryLimit)

	if cfg.Catalog.SeedOnStart {
		inserted, err := productService.SeedCatalog(startupCtx)
		if err != nil {
			slog.Error("❌ Error seeding the catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}

		slog.Info("Catalog seeded", slog.Int("inserted", inserted))
	}

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	chatHandler := handlers.NewChatHandler(chatService)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{DB: repos.DB})
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", version))

	// Setup router
	routerMux := http.NewServeMux()

	route := func(pattern string, h http.Handler) {
		routerMux.Handle(pattern, metrics.Middleware(h))
	}

	route("POST /api/v1/auth/register", userHandler.Register())
	route("POST /api/v1/auth/login", userHandler.Login())
	route("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))
	route("GET /api/v1/products", authMiddleware.Authenticate(productHandler.ListProducts()))
	route("GET /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.GetProduct()))
	route("POST /api/v1/products", middleware.RequireAdminKey(cfg.Security.AdminAPIKey, productHandler.CreateProduct()))
	route("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	route("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	route("POST /api/v1/chat", authMiddleware.Authenticate(chatHandler.Chat()))
	route("GET /api/v1/chat/history", authMiddleware.Authenticate(chatHandler.History()))

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "smart-shop-assistant")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
