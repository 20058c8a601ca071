package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/azimochilov/instagram-clone/internal/app"
	"github.com/azimochilov/instagram-clone/internal/config"
	"github.com/azimochilov/instagram-clone/internal/logger"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	logger.Init(cfg.LogLevel)

	if err := app.Run(cfg); err != nil {
		logrus.Fatalf("app: %v", err)
	}
}
