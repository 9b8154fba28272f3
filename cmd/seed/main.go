package main

import (
	"context"
	"log"
	"os"

	"pasteleria-mil-sabores/internal/config"
	"pasteleria-mil-sabores/internal/db"
	"pasteleria-mil-sabores/internal/migrate"
	productrepo "pasteleria-mil-sabores/internal/repository/product"
	"pasteleria-mil-sabores/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC)

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	defer conn.Close()

	if err := migrate.Apply(conn); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}
	if err := seed.Apply(ctx, productrepo.NewSQLite(conn)); err != nil {
		logger.Fatalf("seed catalog: %v", err)
	}
	logger.Printf("default catalog seeded into %s", cfg.DBPath)
}
