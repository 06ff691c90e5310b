// main.go
package main

import (
	"context"
	"log"

	"lab-booking/cmd"
	"lab-booking/internal/data/repository"
	"lab-booking/internal/wire"
	"lab-booking/pkg/database"
	"lab-booking/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Periodic sweep that archives timeframes whose window has passed
	scheduler := cron.New()
	_, err = scheduler.AddFunc(config.Booking.SweepSchedule, func() {
		if _, err := app.Service.Maintenance.DisableExpiredTimeFrames(context.Background()); err != nil {
			logger.Error("Timeframe sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		logger.Fatal("Failed to schedule timeframe sweep",
			zap.Error(err),
			zap.String("schedule", config.Booking.SweepSchedule),
		)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
