package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ashik3031/inventory-management/internal/auth"
	"github.com/ashik3031/inventory-management/internal/config"
	"github.com/ashik3031/inventory-management/internal/db"
	"github.com/ashik3031/inventory-management/internal/http/ban"
	"github.com/ashik3031/inventory-management/internal/http/handlers"
	rl "github.com/ashik3031/inventory-management/internal/http/rate_limiter"
	"github.com/ashik3031/inventory-management/internal/http/router"
	"github.com/ashik3031/inventory-management/internal/redissvc"
	"github.com/ashik3031/inventory-management/internal/repo"
)

// @title Inventory Management API
// @version 1.0
// @description REST API for product inventory management: registration/login, product CRUD and inventory statistics.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	redisService := redissvc.NewRedisService(rdb, ctx)
	ban.SetRedisService(redisService)

	go ban.StartDailyBanSummary(time.Hour * 24)
	go rl.StartVisitorCleanupLoop()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))

	r := router.NewRouter()
	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
