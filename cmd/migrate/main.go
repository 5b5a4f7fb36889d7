package main

import (
	"flag"
	"log"

	"mindspark/internal/config"
	"mindspark/internal/database"
	"mindspark/internal/logger"
)

func main() {
	migrationsDir := flag.String("dir", "database/migrations", "path to the migrations directory")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database: " + err.Error())
	}
	defer db.Close()

	if err := database.RunMigrations(db, *migrationsDir); err != nil {
		l.Fatal("Failed to run migrations: " + err.Error())
	}
	l.Info("Migrations applied successfully")
}
