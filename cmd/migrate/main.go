package main

import (
	"context"
	"log"
	"os"

	"pasteleria-mil-sabores/internal/config"
	"pasteleria-mil-sabores/internal/db"
	"pasteleria-mil-sabores/internal/migrate"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC)

	conn, err := db.Open(context.Background(), cfg.DBPath)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	defer conn.Close()

	if err := migrate.Apply(conn); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}
	logger.Printf("migrations applied to %s", cfg.DBPath)
}
