package main

import (
	"log"
	"os"

	"github.com/iamvkosarev/role-distributor-bot/config"
	"github.com/iamvkosarev/role-distributor-bot/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.Run(cfg); err != nil {
		log.Fatalf("bot stopped: %v", err)
	}
}
