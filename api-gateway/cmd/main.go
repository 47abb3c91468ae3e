package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"hospital-ops/api-gateway/internal/cache"
	"hospital-ops/api-gateway/internal/config"
	"hospital-ops/api-gateway/internal/proxy"
	"hospital-ops/api-gateway/internal/utils"
	"hospital-ops/api-gateway/setup"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx, shutdownManager := utils.NewShutdownManager(context.Background())

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Fatal("Invalid Redis URL:", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}

	shutdownManager.Register("redis", func(ctx context.Context) error {
		return rdb.Close()
	})

	responseCache := cache.New(rdb)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes: the auth collaborator handles login/logout itself.
	r.Any("/api/auth/*proxyPath", proxy.CreateProxy(
		cfg.Auth.URL,
		"/api/auth",
		"/auth",
	))

	// Secured routes
	secured := r.Group("/api")
	secured.Use(utils.AuthMiddleware(cfg.Auth.URL))
	setup.ConfigureServiceProxies(secured, cfg.Backend.URL, responseCache)

	// Admin routes
	admin := secured.Group("/admin")
	admin.Use(utils.RequireRoles("admin"))
	setup.ConfigureAdminProxies(admin, cfg.Backend.URL, responseCache)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,
	}

	go func() {
		log.Printf("API Gateway listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to run API Gateway: %v", err)
		}
	}()

	shutdownManager.Register("http server", func(ctx context.Context) error {
		return srv.Shutdown(ctx)
	})

	shutdownManager.Wait(ctx)
}
