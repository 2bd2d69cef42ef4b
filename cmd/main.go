package main

import (
	"log"

	"github.com/lol2506/calorie-tracker/config"
	"github.com/lol2506/calorie-tracker/routes"
	"github.com/lol2506/calorie-tracker/seed"
)

func main() {
	cfg := config.Load()
	db := config.InitDB(cfg)

	if err := seed.Foods(db); err != nil {
		log.Fatalf("Food catalog seeding failed: %v", err)
	}

	r := routes.SetupRouter(db, cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
