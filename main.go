package main

import (
	"context"
	"log"
	"os"

	"homecooked/config"
	recommendationController "homecooked/controllers/recommendation"
	"homecooked/database"
	"homecooked/llm"
	"homecooked/logger"
	"homecooked/routers"
	"homecooked/utils"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.ConnectDb()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Log.Warnf("Could not create upload directory %s: %v", cfg.UploadDir, err)
	}

	if cfg.GeminiAPIKey != "" {
		recommender, err := llm.NewGeminiRecommender(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Errorf("Recommendations disabled: %v", err)
		} else {
			defer recommender.Close()
			recommendationController.Recommender = recommender
		}
	} else {
		logger.Log.Info("GEMINI_API_KEY not set, recommendations disabled")
	}

	if cfg.SchedulerEnabled {
		scheduler := utils.InitializeScheduler()
		defer scheduler.Stop()
	}

	app := routers.NewApp(true)

	logger.Log.Infof("Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatalf("Server stopped: %v", err)
	}
}
