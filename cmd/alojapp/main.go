package main

import (
	"log"

	"github.com/Soloquie/Alojapp-sub002/internal/app"
	"github.com/Soloquie/Alojapp-sub002/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	// Local development convenience; absence of .env is fine.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
