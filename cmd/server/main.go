package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron"

	"github.com/ishaanB3006/fitness-tracker/internal/cache"
	"github.com/ishaanB3006/fitness-tracker/internal/config"
	"github.com/ishaanB3006/fitness-tracker/internal/handler"
	"github.com/ishaanB3006/fitness-tracker/internal/personalization"
	"github.com/ishaanB3006/fitness-tracker/internal/repository"
	"github.com/ishaanB3006/fitness-tracker/internal/router"
	"github.com/ishaanB3006/fitness-tracker/internal/service"
	"github.com/ishaanB3006/fitness-tracker/seeds"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	ctx := context.Background()

	// ------------ PostgreSQL ---------------
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to parse database config %v", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatalf("failed to connect to database %v", err)
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool); err != nil {
		log.Fatalf("database not ready: %v", err)
	}
	log.Println("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := migrateDown(ctx, pool); err != nil {
			log.Fatalf("failed to migrate down %v", err)
		}
		log.Println("migrations dropped")
		return
	}

	if err := migrateUp(ctx, pool); err != nil {
		log.Fatalf("failed to migrate up %v", err)
	}

	// ------------ Setup Seed Data ---------------
	if err := checkSeed(ctx, pool); err != nil {
		log.Fatalf("failed to check seed %v", err)
	}

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to parse redis url %v", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	recCache := cache.NewCache(redisClient, cfg.CacheTTL)
	if err := recCache.Ping(ctx); err != nil {
		log.Fatalf("redis not ready: %v", err)
	}
	log.Println("connected to Redis")

	// ------------ Wiring ---------------
	repo := repository.NewRepository(pool)
	engine := personalization.NewEngine(personalization.DefaultRules())
	svc := service.NewService(repo, recCache, engine)
	h := handler.NewHandler(svc)
	r := router.Setup(h, cfg.CORSOrigins)

	// ------------ Week Rollover Sweep ---------------
	// Clear cached recommendations early Monday so new weekly plans
	// rank against fresh state.
	sweeper := cron.New()
	if err := sweeper.AddFunc("0 5 0 * * 1", func() {
		sweepCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := recCache.ClearAll(sweepCtx); err != nil {
			log.Printf("[sweep] cache clear failed: %v", err)
			return
		}
		log.Println("[sweep] recommendation caches cleared for new week")
	}); err != nil {
		log.Fatalf("failed to schedule cache sweep %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	// ---------------- Server --------------------
	log.Printf("Server running on %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), r))
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Printf("waiting for database... (%d/30)", i+1)
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.down.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations dropped successfully")
	return nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.up.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations applied successfully")
	return nil
}

func checkSeed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM profiles").Scan(&count); err != nil {
		return fmt.Errorf("check profiles count: %w", err)
	}
	if count > 0 {
		log.Printf("database already seeded (%d profiles), skipping", count)
		return nil
	}
	return seeds.Setup(ctx, pool)
}
