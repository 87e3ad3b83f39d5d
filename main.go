package main

import (
	"context"
	"log"
	"time"

	"github.com/Myusername84/food-server/auth"
	"github.com/Myusername84/food-server/config"
	"github.com/Myusername84/food-server/database"
	"github.com/Myusername84/food-server/routes"
	"github.com/Myusername84/food-server/services"
	"github.com/Myusername84/food-server/session"
	"github.com/Myusername84/food-server/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	log.Println("✅ Starting application...")

	cfg := config.Load()
	if cfg.SessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Init DB
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("❌ Failed to create indexes: %v", err)
	}
	log.Printf("✅ Connected to MongoDB (%s)", cfg.MongoDBName)

	// Stores and services
	accountStore := store.NewAccountStore(db)
	cartStore := store.NewCartStore(db)
	catalogStore := store.NewCatalogStore(db)

	accounts := services.NewAccountService(accountStore, cartStore)
	carts := services.NewCartService(cartStore)

	// Session store: in-process by default, Redis when configured
	sessions := session.NewManager(newSessionStore(ctx, cfg), cfg.SessionSecret, session.DefaultTTL)

	// Gin setup
	r := gin.Default()

	// CORS settings: single trusted client origin, cookies allowed
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Accounts: accounts,
		Carts:    carts,
		Catalog:  catalogStore,
		Sessions: sessions,
		Google:   auth.NewGoogleAuth(cfg, accounts, sessions),
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// newSessionStore picks the session backend. The memory store gets a
// background sweep so abandoned sessions do not pile up; Redis handles
// expiry itself.
func newSessionStore(ctx context.Context, cfg *config.Config) session.Store {
	if cfg.RedisAddr == "" {
		mem := session.NewMemoryStore()
		go mem.Sweep(30 * time.Minute)
		return mem
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Redis connection failed: %v", err)
	}
	log.Printf("✅ Sessions stored in Redis (%s)", cfg.RedisAddr)
	return session.NewRedisStore(client)
}
