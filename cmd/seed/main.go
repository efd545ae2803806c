// Command seed populates the database with demo social data.
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"travelshare/internal/config"
	"travelshare/internal/database"
	"travelshare/internal/seed"
)

func main() {
	preset := flag.String("preset", "demo", "Built-in preset name or path to a YAML preset ("+strings.Join(seed.BuiltinPresets(), ", ")+")")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	p, err := seed.LoadPreset(*preset)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("Preset %q: %d users, %d trips each, clean=%v", p.Name, p.Users, p.TripsPerUser, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	if _, err := s.Apply(context.Background(), p); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
	log.Println("✨ All done! Your database is now populated with test data.")
}
