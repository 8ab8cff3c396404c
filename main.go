package main

import (
	"context"
	"lottery_manager/config"
	"lottery_manager/database"
	"lottery_manager/helper"
	"lottery_manager/router"
	"lottery_manager/utils"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: config.Int("BODY_LIMIT_MB", 10) * 1024 * 1024,
	})

	origins := config.ConfigOr("CORS_ORIGINS", "*")
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: origins != "*",
		MaxAge:           600,
	}))

	if err := database.ConnectDB(); err != nil {
		utils.Log.WithError(err).Fatal("connect database failed")
	}

	store, err := helper.NewReceiptStoreFromConfig()
	if err != nil {
		utils.Log.WithError(err).Fatal("init receipt store failed")
	}
	helper.Receipts = store

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if addr := config.Config("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.Config("REDIS_PASSWORD"),
		})
		defer rdb.Close()
		helper.Draws = helper.NewDrawBroadcaster(rdb)
		go helper.Draws.Relay(ctx)
	}

	if err := helper.StartHealthScheduler(); err != nil {
		utils.Log.WithError(err).Error("start health scheduler failed")
	}
	if err := helper.StartStatsScheduler(); err != nil {
		utils.Log.WithError(err).Error("start stats scheduler failed")
	}
	defer helper.StopSchedulers()

	router.SetupRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		utils.Log.Info("shutting down")
		cancel()
		_ = app.Shutdown()
	}()

	port := config.ConfigOr("PORT", "8080")
	if err := app.Listen(":" + port); err != nil {
		utils.Log.WithError(err).Fatal("server stopped")
	}
}
