package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gokatarajesh/trivia-api/internal/app"
	"github.com/gokatarajesh/trivia-api/internal/config"
)

const bootstrapTimeout = 30 * time.Second

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load("configs/.env"); err != nil && !os.IsNotExist(err) {
			log.Printf("warning: could not load configs/.env: %v", err)
		}
	}

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// bounds store connection and startup migrations only
	bootCtx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	instance, err := app.New(bootCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	if err := instance.Run(context.Background()); err != nil {
		log.Fatalf("runtime error: %v", err)
	}
}
