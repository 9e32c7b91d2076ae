package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/app"
	"github.com/itsmenoahpoli/capstone-dentalease-api-app/internal/config"
)

func main() {
	// Missing .env is fine in containers where the environment is injected.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
