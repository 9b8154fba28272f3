package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pasteleria-mil-sabores/internal/config"
	"pasteleria-mil-sabores/internal/db"
	"pasteleria-mil-sabores/internal/httpserver"
	"pasteleria-mil-sabores/internal/migrate"
	"pasteleria-mil-sabores/internal/prefs"
	cartrepo "pasteleria-mil-sabores/internal/repository/cart"
	orderrepo "pasteleria-mil-sabores/internal/repository/order"
	productrepo "pasteleria-mil-sabores/internal/repository/product"
	userrepo "pasteleria-mil-sabores/internal/repository/user"
	"pasteleria-mil-sabores/internal/seed"
	cartsvc "pasteleria-mil-sabores/internal/service/cart"
	catalogsvc "pasteleria-mil-sabores/internal/service/catalog"
	ordersvc "pasteleria-mil-sabores/internal/service/order"
	usersvc "pasteleria-mil-sabores/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(rootCtx, cfg.DBPath)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	defer conn.Close()

	// The embedded database owns its schema; apply migrations and the
	// default catalog on every start.
	if err := migrate.Apply(conn); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	productRepo := productrepo.NewSQLite(conn)
	if err := seed.ApplyIfEmpty(rootCtx, productRepo); err != nil {
		logger.Fatalf("seed catalog: %v", err)
	}

	cartRepo := cartrepo.NewSQLite(conn)
	orderRepo := orderrepo.NewSQLite(conn)
	userRepo := userrepo.NewSQLite(conn)
	prefsStore := prefs.New(conn)

	catalogService := catalogsvc.New(productRepo)
	cartService := cartsvc.New(cartRepo, productRepo)
	userService := usersvc.New(userRepo, prefsStore)
	orderService := ordersvc.New(orderRepo, cartService, userService)
	tracker := ordersvc.NewTracker(orderRepo, cfg.OrderDwell, logger)

	go tracker.Run(rootCtx)

	srv := httpserver.New(cfg.HTTPAddr, logger, conn, httpserver.Deps{
		CatalogSvc: catalogService,
		CartSvc:    cartService,
		OrderSvc:   orderService,
		UserSvc:    userService,
		Tracker:    tracker,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-rootCtx.Done():
		logger.Printf("received shutdown signal")
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
