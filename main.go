package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"rakb/api/internal/api"
	"rakb/api/internal/cache"
	"rakb/api/internal/config"
	"rakb/api/internal/db"
	"rakb/api/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Database. A missing DATABASE_URL/DATABASE_NAME is not
	// fatal: the API runs with an unconfigured store so the diagnostics
	// endpoint stays reachable.
	var mongoClient *mongo.Client
	var mongoDb *mongo.Database
	if cfg.StoreConfigured() {
		mongoClient, mongoDb, err = db.ConnectDB(cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer func() {
			if err := db.DisconnectDB(mongoClient); err != nil {
				log.Errorf("Error disconnecting from MongoDB: %v", err)
			}
		}()
	} else {
		log.Warn("DATABASE_URL/DATABASE_NAME not set; running without a database")
	}

	// Initialize Cache (Redis, optional). Failure only disables the city
	// directory cache.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warnf("Failed to connect to Redis, continuing without cache: %v", err)
			redisClient = nil
		} else {
			defer func() {
				if err := cache.DisconnectRedis(redisClient); err != nil {
					log.Errorf("Error disconnecting from Redis: %v", err)
				}
			}()
		}
	}

	router := api.SetupRouter(cfg, store.NewMongoStore(mongoDb), redisClient)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Infof("%s listening on :%s", cfg.AppName, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Infof("Received signal: %s. Shutting down gracefully...", sig)

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Errorf("Server shutdown error: %v", err)
	}

	log.Info("Server gracefully stopped")
}
