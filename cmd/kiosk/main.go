package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rl1809/coffee-kiosk/internal/adapter/console"
	"github.com/rl1809/coffee-kiosk/internal/adapter/storage"
	"github.com/rl1809/coffee-kiosk/internal/core/domain"
	"github.com/rl1809/coffee-kiosk/internal/core/service"
	"github.com/rl1809/coffee-kiosk/internal/port"
)

const (
	defaultMySQLDSN    = "root:root@tcp(localhost:3306)/coffeekiosk?parseTime=true"
	defaultAdminSecret = "admin123"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MySQL (the durable sales ledger)
	db, err := sql.Open("mysql", getEnvOrDefault("MYSQL_DSN", defaultMySQLDSN))
	if err != nil {
		logger.Fatal("failed to open mysql", zap.Error(err))
	}
	defer db.Close()
	db.SetMaxOpenConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		logger.Fatal("failed to ping mysql", zap.Error(err))
	}
	logger.Info("connected to mysql")

	ledger := storage.NewMySQLAdapter(db)
	if err := ledger.EnsureSchema(ctx); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	// Inventory lives in Redis when configured, in process memory
	// otherwise. Either way it starts at the machine defaults.
	var inventory port.InventoryRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("failed to connect redis", zap.Error(err))
		}
		defer rdb.Close()
		logger.Info("connected to redis", zap.String("addr", addr))
		inventory = storage.NewRedisAdapter(rdb)
	} else {
		inventory = storage.NewMemoryAdapter()
	}

	if err := inventory.Refill(ctx); err != nil {
		logger.Fatal("failed to seed inventory", zap.Error(err))
	}
	logger.Info("inventory seeded to defaults")

	orders := service.NewOrderService(
		domain.DefaultMenu(),
		inventory,
		ledger,
		logger,
		console.Chime(os.Stdout),
	)
	reports := service.NewReportService(ledger,
		getEnvOrDefault("KIOSK_ADMIN_SECRET", defaultAdminSecret))

	ui := console.New(orders, reports, os.Stdin, os.Stdout)
	done := make(chan error, 1)
	go func() {
		done <- ui.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("shutting down...")
		cancel()
	case err := <-done:
		if err != nil {
			logger.Fatal("console loop failed", zap.Error(err))
		}
	}
	logger.Info("kiosk stopped")
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
